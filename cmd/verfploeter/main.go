package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/LMBertholdo/verfploeter/internal/agent"
	"github.com/LMBertholdo/verfploeter/internal/coordinator"
	"github.com/LMBertholdo/verfploeter/internal/rawsock"
	pb "github.com/LMBertholdo/verfploeter/proto/verfploeter/gen/pb-go"
)

var (
	// Set by LDFLAGS
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	defaultServerAddr  = "127.0.0.1:50001"
	defaultMetricsAddr = "127.0.0.1:2112"

	// transportKeepalive is the gRPC-level client keepalive; the 5-second
	// application keepalive on the task stream rides on top of it.
	transportKeepalive = 180 * time.Second
)

var (
	verbose     bool
	showVersion bool

	listenAddr  string
	metricsAddr string
	tlsCert     string
	tlsKey      string

	serverAddr string
	hostname   string
	caCert     string
	sourceAddr string
)

var rootCmd = &cobra.Command{
	Use:   "verfploeter",
	Short: "Distributed ICMP measurement control plane",
	Long: `Verfploeter performs distributed active measurements: a central server
dispatches ping tasks to connected clients, which probe the targets and
stream observed replies back.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Printf("verfploeter version: %s, commit: %s, date: %s\n", version, commit, date)
			os.Exit(0)
		}
	},
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Launches the verfploeter server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Launches the verfploeter client",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClient(cmd.Context())
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&showVersion, "version", false, "print version and exit")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", defaultMetricsAddr, "listen address for prometheus metrics")

	serverCmd.Flags().StringVar(&listenAddr, "listen-addr", coordinator.DefaultListenAddr, "listen address for the grpc server")
	serverCmd.Flags().StringVar(&tlsCert, "tls-cert", "", "path to the server TLS certificate")
	serverCmd.Flags().StringVar(&tlsKey, "tls-key", "", "path to the server TLS key")

	clientCmd.Flags().StringVar(&serverAddr, "server", defaultServerAddr, "address of the verfploeter server")
	clientCmd.Flags().StringVar(&hostname, "hostname", "", "hostname reported to the server (default: system hostname)")
	clientCmd.Flags().StringVar(&caCert, "ca-cert", "", "path to a root certificate; enables TLS when set")
	clientCmd.Flags().StringVar(&sourceAddr, "source", "", "IPv4 source address for outgoing probes")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(clientCmd)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	}))
}

// startMetricsServer serves /metrics in the background. Failures are
// logged, not fatal: measurements run fine without scraping.
func startMetricsServer(log *slog.Logger, addr string) {
	if addr == "" {
		return
	}
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Info("prometheus metrics listening", "address", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("metrics server failed", "error", err)
		}
	}()
}

func runServer(ctx context.Context) error {
	log := newLogger(verbose)
	log.Info("starting verfploeter server", "version", version)

	startMetricsServer(log, metricsAddr)

	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", listenAddr, err)
	}

	options := []coordinator.Option{
		coordinator.WithLogger(log.With("component", "server")),
		coordinator.WithListener(lis),
	}
	if tlsCert != "" || tlsKey != "" {
		cert, err := tls.LoadX509KeyPair(tlsCert, tlsKey)
		if err != nil {
			return fmt.Errorf("failed to load TLS key pair: %w", err)
		}
		options = append(options, coordinator.WithTLSConfig(&tls.Config{Certificates: []tls.Certificate{cert}}))
	}

	srv, err := coordinator.New(options...)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Run(ctx)
}

func runClient(ctx context.Context) error {
	log := newLogger(verbose)
	log.Info("starting verfploeter client", "version", version, "server", serverAddr)

	startMetricsServer(log, metricsAddr)

	if hostname == "" {
		h, err := os.Hostname()
		if err != nil {
			return fmt.Errorf("failed to determine hostname: %w", err)
		}
		hostname = h
	}

	opts := []grpc.DialOption{
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:    transportKeepalive,
			Timeout: transportKeepalive,
		}),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(coordinator.MaxMessageSize),
			grpc.MaxCallSendMsgSize(coordinator.MaxMessageSize),
		),
	}
	if caCert != "" {
		log.Info("connecting to server using TLS", "ca-cert", caCert)
		creds, err := credentials.NewClientTLSFromFile(caCert, "")
		if err != nil {
			return fmt.Errorf("failed to load root certificate: %w", err)
		}
		opts = append(opts, grpc.WithTransportCredentials(creds))
	} else {
		log.Warn("connecting to server without transport security")
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}

	conn, err := grpc.NewClient(serverAddr, opts...)
	if err != nil {
		return fmt.Errorf("failed to create grpc client: %w", err)
	}
	defer conn.Close()
	client := pb.NewVerfploeterClient(conn)

	var source net.IP
	if sourceAddr != "" {
		source = net.ParseIP(sourceAddr)
		if source == nil || source.To4() == nil {
			return fmt.Errorf("invalid IPv4 source address: %q", sourceAddr)
		}
	}

	sender, err := rawsock.NewSender(rawsock.SenderConfig{
		Logger: log.With("component", "rawsock"),
		Source: source,
	})
	if err != nil {
		return fmt.Errorf("failed to open probe socket: %w", err)
	}
	defer sender.Close()

	capturer, err := rawsock.NewCapturer(rawsock.CapturerConfig{
		Logger: log.With("component", "rawsock"),
	})
	if err != nil {
		return fmt.Errorf("failed to open capture socket: %w", err)
	}
	defer capturer.Close()

	metadata := &pb.Metadata{Hostname: hostname, Version: version}

	// Reconnect with exponential backoff; a session that held for a while
	// resets the schedule.
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 0

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		session, err := agent.New(&agent.Config{
			Logger:   log.With("component", "client"),
			Client:   client,
			Hostname: hostname,
			Version:  version,
			Handlers: map[string]agent.TaskHandler{
				agent.HandlerPingOutbound: agent.NewPingOutbound(log.With("handler", agent.HandlerPingOutbound), sender),
				agent.HandlerPingInbound:  agent.NewPingInbound(log.With("handler", agent.HandlerPingInbound), client, metadata, capturer, nil),
			},
		})
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		start := time.Now()
		if err := session.Run(ctx); err != nil {
			log.Error("session failed", "error", err)
		}
		if ctx.Err() != nil {
			return nil
		}
		if time.Since(start) > time.Minute {
			bo.Reset()
		}

		wait := bo.NextBackOff()
		log.Info("reconnecting", "in", wait)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
}
