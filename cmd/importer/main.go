package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/config"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/db"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/importer"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/repository/product"
	"github.com/alshbh-com/elfahd-express-marketplace/internal/repository/restaurant"
)

func main() {
	var (
		filePath     string
		restaurantID string
	)
	flag.StringVar(&filePath, "file", "", "Path to menu CSV export (name, price, description, image)")
	flag.StringVar(&restaurantID, "restaurant", "", "Restaurant ID to import the menu into")
	flag.Parse()

	if filePath == "" || restaurantID == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	rest, err := restaurant.NewPostgres(pool, logger).GetByID(ctx, restaurantID)
	if err != nil {
		logger.Fatalf("look up restaurant %q: %v", restaurantID, err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, product.NewPostgres(pool, logger), rest.ID)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed: %v", err)
	}

	fmt.Printf("Imported %d menu items into %s in %s\n", count, rest.Name, time.Since(start).Truncate(time.Millisecond))
}
