package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	cartv1 "github.com/dwikikusuma/freshcart/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/freshcart/api/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/freshcart/api/checkout/v1"
	orderv1 "github.com/dwikikusuma/freshcart/api/order/v1"
	profilev1 "github.com/dwikikusuma/freshcart/api/profile/v1"
	sessionv1 "github.com/dwikikusuma/freshcart/api/session/v1"

	cartapp "github.com/dwikikusuma/freshcart/internal/cart/app"
	cartdomain "github.com/dwikikusuma/freshcart/internal/cart/domain"
	cartgrpc "github.com/dwikikusuma/freshcart/internal/cart/grpc"

	catalogapp "github.com/dwikikusuma/freshcart/internal/catalog/app"
	cgrpc "github.com/dwikikusuma/freshcart/internal/catalog/grpc"
	cmemory "github.com/dwikikusuma/freshcart/internal/catalog/infra/memory"
	cpg "github.com/dwikikusuma/freshcart/internal/catalog/infra/postgres"

	checkoutapp "github.com/dwikikusuma/freshcart/internal/checkout/app"
	checkoutgrpc "github.com/dwikikusuma/freshcart/internal/checkout/grpc"
	checkoutadapter "github.com/dwikikusuma/freshcart/internal/checkout/infra/adapter"

	orderapp "github.com/dwikikusuma/freshcart/internal/order/app"
	ordergrpc "github.com/dwikikusuma/freshcart/internal/order/grpc"
	ordermemory "github.com/dwikikusuma/freshcart/internal/order/infra/memory"
	orderpg "github.com/dwikikusuma/freshcart/internal/order/infra/postgres"

	profileapp "github.com/dwikikusuma/freshcart/internal/profile/app"
	profiledomain "github.com/dwikikusuma/freshcart/internal/profile/domain"
	profilegrpc "github.com/dwikikusuma/freshcart/internal/profile/grpc"

	"github.com/dwikikusuma/freshcart/internal/i18n"
	"github.com/dwikikusuma/freshcart/internal/state"
	sessiongrpc "github.com/dwikikusuma/freshcart/internal/state/grpc"

	"github.com/dwikikusuma/freshcart/pkg/config"
	"github.com/dwikikusuma/freshcart/pkg/logger"
	"github.com/dwikikusuma/freshcart/pkg/postgres"
	"github.com/dwikikusuma/freshcart/pkg/rpc"
	"github.com/dwikikusuma/freshcart/pkg/shutdown"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	var db *sql.DB
	if cfg.NeedsPostgres() {
		db = mustDB(log, cfg.Postgres)
		defer db.Close()
	}

	// Catalog
	catalogRepo := mustCatalogRepo(ctx, log, cfg, db)
	catalogSvc := catalogapp.NewService(catalogRepo)

	products, err := catalogSvc.Products(ctx)
	if err != nil {
		log.Error("catalog load failed", slog.Any("err", err))
		os.Exit(1)
	}
	categories, err := catalogSvc.ListCategories(ctx)
	if err != nil {
		log.Error("categories load failed", slog.Any("err", err))
		os.Exit(1)
	}

	tr, err := i18n.New(cfg.DefaultLanguage)
	if err != nil {
		log.Error("translations load failed", slog.Any("err", err))
		os.Exit(1)
	}

	// Session state
	user := profiledomain.DefaultUser()
	user.Language = tr.Default().String()
	store := state.New(state.Options{
		Catalog:    products,
		Categories: categories,
		User:       user,
		Pricing: cartdomain.Pricing{
			FreeDeliveryThreshold: cfg.FreeDeliveryThreshold,
			DeliveryFee:           cfg.DeliveryFee,
		},
		Translator: tr,
		Logger:     log,
	})
	defer store.Close()

	// Orders
	orderRepo := mustOrderRepo(ctx, log, cfg, db)
	orderSvc := orderapp.NewService(orderRepo)

	cartSvc := cartapp.NewService(catalogSvc)
	profileSvc := profileapp.NewService(tr)

	// Checkout (adapters)
	session := checkoutadapter.NewStoreSession()
	catalogReader := checkoutadapter.NewCatalogServiceReader(catalogSvc)
	checkoutSvc := checkoutapp.NewService(session, catalogReader, orderSvc, cfg.CheckoutConcurrency)

	addr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", addr))
		os.Exit(1)
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		state.UnaryServerInterceptor(store),
		rpc.LoggingUnaryInterceptor(log),
	))
	catalogv1.RegisterCatalogServiceServer(grpcServer, cgrpc.NewServer(catalogSvc))
	cartv1.RegisterCartServiceServer(grpcServer, cartgrpc.NewServer(cartSvc))
	profilev1.RegisterProfileServiceServer(grpcServer, profilegrpc.NewServer(profileSvc))
	sessionv1.RegisterSessionServiceServer(grpcServer, sessiongrpc.NewServer())
	orderv1.RegisterOrderServiceServer(grpcServer, ordergrpc.NewServer(orderSvc))
	checkoutv1.RegisterCheckoutServiceServer(grpcServer, checkoutgrpc.NewServer(checkoutSvc))

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("grpc starting", slog.String("addr", addr),
			slog.String("catalog_store", cfg.CatalogStore), slog.String("order_store", cfg.OrderStore))
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("grpc serve error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")
	healthSrv.Shutdown()

	if !shutdown.Graceful(10*time.Second, grpcServer.GracefulStop, grpcServer.Stop) {
		log.Warn("graceful stop timeout, forcing stop")
	}

	wg.Wait()
	log.Info("bye")
}

// mustCatalogRepo returns the bundled seed catalog, or a Postgres catalog
// upserted from that seed.
func mustCatalogRepo(ctx context.Context, log *slog.Logger, cfg config.Config, db *sql.DB) catalogapp.ProductRepo {
	seed, err := cmemory.NewSeedProductRepo()
	if err != nil {
		log.Error("catalog seed failed", slog.Any("err", err))
		os.Exit(1)
	}
	if cfg.CatalogStore != config.StorePostgres {
		return seed
	}

	if err := cpg.Migrate(ctx, db); err != nil {
		log.Error("catalog migrate failed", slog.Any("err", err))
		os.Exit(1)
	}
	products, _ := seed.List(ctx)
	categories, _ := seed.Categories(ctx)

	repo := cpg.NewProductRepo(db)
	if err := repo.Seed(ctx, products, categories); err != nil {
		log.Error("catalog seed failed", slog.Any("err", err))
		os.Exit(1)
	}
	return repo
}

func mustOrderRepo(ctx context.Context, log *slog.Logger, cfg config.Config, db *sql.DB) orderapp.OrderRepo {
	if cfg.OrderStore != config.StorePostgres {
		return ordermemory.NewOrderRepo()
	}
	if err := orderpg.Migrate(ctx, db); err != nil {
		log.Error("order migrate failed", slog.Any("err", err))
		os.Exit(1)
	}
	return orderpg.NewOrderRepo(db)
}

func mustDB(log *slog.Logger, pg config.Postgres) *sql.DB {
	db, err := postgres.Open(postgres.Config{
		Host:    pg.Host,
		Port:    pg.Port,
		User:    pg.User,
		Pass:    pg.Pass,
		DB:      pg.DB,
		SSLMode: pg.SSLMode,
	})
	if err != nil {
		log.Error("db open failed", slog.Any("err", err))
		os.Exit(1)
	}
	return db
}
