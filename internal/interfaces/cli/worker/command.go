package worker

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	subscriptionUsecases "officetools/internal/application/subscription/usecases"
	"officetools/internal/infrastructure/config"
	"officetools/internal/infrastructure/database"
	"officetools/internal/infrastructure/repository"
	"officetools/internal/infrastructure/scheduler"
	"officetools/internal/shared/biztime"
	"officetools/internal/shared/logger"
)

var (
	env        string
	configPath string
	once       bool
)

// NewCommand runs the subscription expiry sweep outside the HTTP server,
// for deployments that set scheduler.enabled=false on the API nodes.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run the subscription expiry sweep",
		Long:  `Deactivate lapsed subscriptions and fail stale gateway orders, either once or on the configured interval.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&once, "once", false, "Run a single sweep and exit")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.IsDebug()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	log := logger.WithComponent("worker")

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	sweep := subscriptionUsecases.NewExpireSubscriptionsUseCase(
		repository.NewSubscriptionRepository(db),
		repository.NewOrderRepository(db),
		cfg.Payment.PendingTTLDuration(),
		log,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if once {
		changed, err := sweep.Execute(ctx)
		if err != nil {
			return fmt.Errorf("expiry sweep failed: %w", err)
		}
		log.Infow("expiry sweep finished", "changed", changed)
		return nil
	}

	interval := time.Duration(cfg.Scheduler.IntervalMinutes) * time.Minute
	sched := scheduler.NewSubscriptionScheduler(sweep, interval, log)
	sched.Start(ctx)

	log.Infow("worker started", "environment", env, "interval", interval)
	<-ctx.Done()

	sched.Stop()
	log.Infow("worker exited gracefully")
	return nil
}
