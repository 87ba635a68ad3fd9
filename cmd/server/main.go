package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	"github.com/rl1809/sale-recorder/internal/adapter/handler"
	"github.com/rl1809/sale-recorder/internal/adapter/handler/pb"
	"github.com/rl1809/sale-recorder/internal/adapter/storage"
	"github.com/rl1809/sale-recorder/internal/config"
	"github.com/rl1809/sale-recorder/internal/core/service"
	"github.com/rl1809/sale-recorder/internal/port"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Authoritative store
	dsn := cfg.Store.MySQL
	if cfg.Store.Driver == "postgres" {
		dsn = cfg.Store.Postgres
	}
	store, err := storage.Open(ctx, cfg.Store.Driver, dsn)
	if err != nil {
		return err
	}
	defer store.Close()
	log.Printf("connected to %s", cfg.Store.Driver)

	if err := store.InitSchema(ctx); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	// Optional cache-side stock gate
	var cache port.StockCache
	var rdb *redis.Client
	if cfg.Cache.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			PoolSize: 100,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		defer rdb.Close()
		log.Println("connected to redis")

		redisAdapter := storage.NewRedisAdapter(rdb)
		for _, productID := range cfg.Cache.WarmProducts {
			inv, err := store.GetInventory(ctx, productID)
			if err != nil {
				return fmt.Errorf("warm product %d: %w", productID, err)
			}
			if inv == nil {
				log.Printf("warm product %d skipped: no inventory record", productID)
				continue
			}
			if err := redisAdapter.SetStock(ctx, productID, inv.Stock); err != nil {
				return fmt.Errorf("warm product %d: %w", productID, err)
			}
			log.Printf("warmed stock: product %d = %d", productID, inv.Stock)
		}
		cache = redisAdapter
	}

	saleService := service.NewSaleService(store, cache)

	// gRPC server
	grpcServer := grpc.NewServer()
	pb.RegisterSaleRecorderServer(grpcServer, handler.NewGRPCHandler(saleService))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.GRPCAddr, err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// HTTP server
	httpHandler := handler.NewHTTPHandler(saleService)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpHandler.HealthCheck)
	mux.HandleFunc("/api/sale", httpHandler.RecordSale)

	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: mux,
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")

	return nil
}
