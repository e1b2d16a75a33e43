package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/azerguest/azerguest-api/internal/config"
	"github.com/azerguest/azerguest-api/internal/logging"
	"github.com/azerguest/azerguest-api/internal/media"
	"github.com/azerguest/azerguest-api/internal/repository/memory"
	miniostore "github.com/azerguest/azerguest-api/internal/repository/minio"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
	"github.com/azerguest/azerguest-api/internal/repository/postgres"
	"github.com/azerguest/azerguest-api/internal/service"
	httptransport "github.com/azerguest/azerguest-api/internal/transport/http"
	"github.com/azerguest/azerguest-api/internal/transport/mail"
	"github.com/azerguest/azerguest-api/internal/transport/telegram"
	"github.com/azerguest/azerguest-api/internal/util"
)

const shutdownTimeout = 10 * time.Second

type repositories struct {
	places    ports.PlaceRepository
	users     ports.UserRepository
	favorites ports.FavoriteRepository
	bookings  ports.BookingRepository
	reviews   ports.ReviewRepository
	sessions  ports.SessionRepository
}

func main() {
	cfg := config.Load()

	closeLog := func() error { return nil }
	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr, logging.WithService("azerguest-api"))
		if err != nil {
			log.Printf("logstash disabled: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
			closeLog = writer.Close
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg)
	stop()
	if err != nil {
		log.Printf("%v", err)
	}
	_ = closeLog()
	if err != nil {
		os.Exit(1)
	}
}

// run wires the API and serves it until ctx is cancelled or the listener fails.
// Every resource it opens is released before it returns.
func run(ctx context.Context, cfg config.Config) error {
	repos, closeRepos, err := openRepositories(ctx, cfg)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer closeRepos()

	if cfg.SeedPlaces {
		if _, err := service.SeedPlaces(ctx, repos.places); err != nil {
			return fmt.Errorf("seed places: %w", err)
		}
	}

	var storage ports.ObjectStorage
	if cfg.MinIOEnabled() {
		client, err := miniostore.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			return fmt.Errorf("minio: %w", err)
		}
		objectStore := miniostore.NewStorage(client, cfg.MinIOBucketPlaces, cfg.MinIOPublicURL)
		if err := objectStore.EnsureBucket(ctx); err != nil {
			return fmt.Errorf("minio bucket %s: %w", cfg.MinIOBucketPlaces, err)
		}
		storage = objectStore
	} else {
		log.Printf("MINIO_ENDPOINT not set; place image uploads disabled")
	}

	var notifiers service.Notifiers
	if cfg.MailEnabled() {
		notifiers = append(notifiers, mail.NewBookingMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom))
	}
	if cfg.TelegramEnabled() {
		bot, err := telegram.NewBot(cfg.TelegramBotToken)
		if err != nil {
			log.Printf("telegram notifications disabled: %v", err)
		} else {
			notifiers = append(notifiers, telegram.NewBookingNotifier(bot, cfg.TelegramChatID))
		}
	}

	jwtManager := util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)
	authService := service.NewAuthService(repos.users, repos.sessions, jwtManager, cfg.GoogleAudience, cfg.AdminEmails)
	placeService := service.NewPlaceService(repos.places, storage, media.NewInspector(cfg.PlaceImageMaxBytes, media.DefaultMaxDimension))
	favoriteService := service.NewFavoriteService(repos.favorites, repos.places)
	bookingService := service.NewBookingService(repos.bookings, repos.places, notifiers)
	reviewService := service.NewReviewService(repos.reviews, repos.places)

	e := httptransport.NewRouter(cfg.AllowOrigins)
	httptransport.RegisterPages(e)
	httptransport.RegisterSwagger(e, "")
	httptransport.RegisterAuth(e, authService)
	httptransport.RegisterPlaces(e, placeService)
	httptransport.RegisterFavorites(e, authService, favoriteService, cfg.DefaultUserID)
	httptransport.RegisterBookings(e, authService, bookingService)
	httptransport.RegisterReviews(e, authService, reviewService)
	httptransport.RegisterAdmin(e, authService, placeService, cfg.PlaceImageMaxBytes)

	addr := ":" + cfg.Port
	log.Printf("AzerGuest API listening on %s (storage=%s)", addr, cfg.StorageDriver)
	return serve(ctx, e, addr)
}

// serve runs e on addr. A listener error is returned to the caller; a cancelled
// ctx triggers a graceful shutdown bounded by shutdownTimeout.
func serve(ctx context.Context, e *echo.Echo, addr string) error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(addr)
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Printf("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	return nil
}

func openRepositories(ctx context.Context, cfg config.Config) (repositories, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		store := memory.NewStore()
		return repositories{
			places:    store.Places(),
			users:     store.Users(),
			favorites: store.Favorites(),
			bookings:  store.Bookings(),
			reviews:   store.Reviews(),
			sessions:  store.Sessions(),
		}, func() {}, nil
	case config.StorageDriverPostgres:
		db, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("connect: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return repositories{}, nil, fmt.Errorf("migrate: %w", err)
		}
		return repositories{
			places:    postgres.NewPlaceRepo(db),
			users:     postgres.NewUserRepo(db),
			favorites: postgres.NewFavoriteRepo(db),
			bookings:  postgres.NewBookingRepo(db),
			reviews:   postgres.NewReviewRepo(db),
			sessions:  postgres.NewSessionRepo(db),
		}, func() { db.Close() }, nil
	default:
		return repositories{}, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
