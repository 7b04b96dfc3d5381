package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "places-api/docs"
	"places-api/internal/config"
	"places-api/internal/handler"
	"places-api/internal/service"
	"places-api/internal/store"
)

//	@title		Places API
//	@version	1.0
//	@description	Read/write data service over an item catalog, a neighborhoods gazetteer and a postal directory, with search, pagination and geo-proximity queries.

func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Dataset loading failures degrade to empty collections; the service
	// keeps running and the affected endpoints report the gap.
	items, err := store.LoadItems(cfg.ItemsFile)
	if err != nil {
		log.Warn().Err(err).Str("file", cfg.ItemsFile).Msg("item catalog unavailable")
	}
	neighborhoods, err := store.LoadNeighborhoods(cfg.NeighborhoodsFile)
	if err != nil {
		log.Warn().Err(err).Str("file", cfg.NeighborhoodsFile).Msg("neighborhood data unavailable")
	}
	postal, err := store.LoadPostalRecords(cfg.PostalFile)
	if err != nil {
		log.Warn().Err(err).Str("file", cfg.PostalFile).Msg("postal directory unavailable")
	}
	log.Info().
		Int("items", len(items)).
		Int("neighborhoods", len(neighborhoods)).
		Int("postal_records", len(postal)).
		Msg("datasets loaded")

	// Initialize layers
	itemStore := store.NewItemStore(items)
	neighborhoodStore := store.NewNeighborhoodStore(neighborhoods)
	postalStore := store.NewPostalStore(postal)

	itemService := service.NewItemService(itemStore)
	postalService := service.NewPostalService(postalStore)
	placesService := service.NewPlacesService(neighborhoodStore, postalStore)

	itemsHandler := handler.NewItemsHandler(itemService)
	postalHandler := handler.NewPostalHandler(postalService, cfg.DefaultRadiusKm)
	placesHandler := handler.NewPlacesHandler(placesService, cfg.DefaultRadiusKm)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/items", itemsHandler.List)
	r.GET("/items/sorted", itemsHandler.Sorted)
	r.GET("/data/full", itemsHandler.Full)
	r.GET("/item/random", itemsHandler.Random)
	r.GET("/item/:id", itemsHandler.Get)
	r.PUT("/item/:id", itemsHandler.Update)
	r.DELETE("/item/:id", itemsHandler.Delete)
	r.GET("/languages", itemsHandler.Languages)
	r.GET("/categories", itemsHandler.Categories)

	r.GET("/pincode/search", postalHandler.Search)
	r.GET("/pincode/nearby", postalHandler.Nearby)
	r.GET("/pincode/states", postalHandler.States)
	r.GET("/pincode/states/:state/districts", postalHandler.Districts)
	r.GET("/pincode/:pincode", postalHandler.Lookup)

	r.GET("/neighborhoods/nearby", placesHandler.NearbyNeighborhoods)
	r.GET("/places/nearby", placesHandler.NearbyPlaces)
	r.GET("/places/nearby/enhanced", placesHandler.NearbyPlaces)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run(cfg.ServerAddress)
}
