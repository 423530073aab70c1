package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nondejus/lisk-vanity/internal/config"
	"github.com/nondejus/lisk-vanity/internal/crypto"
	logpkg "github.com/nondejus/lisk-vanity/internal/logger"
	"github.com/nondejus/lisk-vanity/pkg/gpu"
	"github.com/nondejus/lisk-vanity/pkg/matcher"
	"github.com/nondejus/lisk-vanity/pkg/search"
	"github.com/nondejus/lisk-vanity/pkg/types"
)

var (
	cfg    = config.NewConfig()
	logger *logpkg.Logger
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "lisk-vanity [LENGTH]",
		Short: "Generate short Lisk addresses",
		Long: `A brute-force vanity generator for short ledger addresses.
It searches key material whose derived address has at most LENGTH decimal
digits, using parallel CPU workers and an optional OpenCL accelerator.`,
		Args: cobra.MaximumNArgs(1),
		Run:  runSearch,
	}

	rootCmd.Flags().BoolVarP(&cfg.GenerateKeypair, "generate-keypair", "k", false, "Generate a key pair instead of a passphrase")
	rootCmd.Flags().IntVarP(&cfg.Threads, "threads", "t", cfg.Threads, "Number of CPU worker threads")
	rootCmd.Flags().BoolVarP(&cfg.GPU, "gpu", "g", false, "Enable use of the GPU through OpenCL")
	rootCmd.Flags().Uint64Var(&cfg.GPUThreads, "gpu-threads", cfg.GPUThreads, "Number of GPU threads (batch size)")
	rootCmd.Flags().IntVar(&cfg.GPUPlatform, "gpu-platform", 0, "The GPU platform to use")
	rootCmd.Flags().IntVar(&cfg.GPUDevice, "gpu-device", 0, "The GPU device to use")
	rootCmd.Flags().Uint64VarP(&cfg.Limit, "limit", "l", cfg.Limit, "Generate N addresses, then exit (0 for infinite)")
	rootCmd.Flags().BoolVar(&cfg.NoProgress, "no-progress", false, "Disable progress output")
	rootCmd.Flags().BoolVar(&cfg.SimpleOutput, "simple-output", false, "Output found keys in the form \"[key] [address]\"")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSearch(cmd *cobra.Command, args []string) {
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to parse LENGTH %q\n", args[0])
			os.Exit(1)
		}
		cfg.MaxLength = n
	}

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrNoDevices) {
			fmt.Fprintln(os.Stderr, "no computation devices specified")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger = logpkg.New()

	m, err := matcher.New(cfg.MaxLength)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var mode types.DerivationMode
	if cfg.GenerateKeypair {
		mode = crypto.RawKeyMode{}
	} else {
		mode = crypto.SeedMode{}
	}

	logger.Printf("Estimated attempts needed: %.0f", m.EstimatedAttempts())
	logger.Printf("Searching with %d CPU threads, %s derivation", cfg.Threads, mode.Name())

	var device gpu.Device
	if cfg.GPU {
		device, err = gpu.NewOpenCL(gpu.Options{
			Platform:    cfg.GPUPlatform,
			DeviceIndex: cfg.GPUDevice,
			Threads:     cfg.GPUThreads,
			Threshold:   m.ThresholdBytes(),
			Mode:        mode,
		})
		if err != nil {
			logger.Fatalf("accelerator initialization failed: %v", err)
		}
	}

	s := search.New(cfg, logger, mode, m, device)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		s.Stop()
	}()

	for sol := range s.Run() {
		if !cfg.NoProgress {
			// Break out of the in-place progress line first.
			fmt.Fprintln(os.Stderr)
		}
		printSolution(sol)
	}

	stats := s.Stats()
	if cfg.Limit != 0 && stats.Found >= cfg.Limit {
		return // limit reached, exit 0
	}
	if !cfg.NoProgress {
		fmt.Fprintln(os.Stderr)
	}
	logger.Printf("Search stopped after %d keys and %d solutions", stats.Attempts, stats.Found)
}

func printSolution(sol types.Solution) {
	fmt.Print(formatSolution(sol, cfg.SimpleOutput))
}

// formatSolution renders one found key. Simple mode prints the bare numeric
// address; the L-suffixed form belongs to the labeled block only.
func formatSolution(sol types.Solution, simple bool) string {
	value := crypto.AddressValue(sol.PublicKey)
	if simple {
		return fmt.Sprintf("%s %s\n",
			strings.ToUpper(hex.EncodeToString(sol.Material[:])),
			strconv.FormatUint(value, 10))
	}
	return fmt.Sprintf("Found matching account!\nPrivate Key: %s\nAddress:     %s\nChecksummed: %s\n",
		sol.Mode.RenderSecret(sol.Material, sol.PublicKey),
		crypto.FullAddress(value),
		crypto.CheckAddress(sol.PublicKey))
}
