package handlers

import (
	"handmadehaven/internal/config"
	"handmadehaven/internal/onboarding"
	"handmadehaven/internal/repos"
	"handmadehaven/internal/services"
	"handmadehaven/internal/storage"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	HomeHandler     *HomeHandler
	ProductHandler  *ProductHandler
	ArtisanHandler  *ArtisanHandler
	SellerHandler   *SellerHandler
	CartHandler     *CartHandler
	FavoriteHandler *FavoriteHandler
	LangHandler     *LangHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	artRepo := repos.NewArtisanRepo(db)
	verRepo := repos.NewVerificationRepo(db)
	cartRepo := repos.NewCartRepo(db)
	favRepo := repos.NewFavoriteRepo(db)
	docs := storage.NewDocumentStore(cfg.DocsDir)

	catalogSvc := services.NewCatalogService(prodRepo)
	artisanSvc := services.NewArtisanService(artRepo)
	onboardSvc := services.NewOnboardingService(docs, artRepo, verRepo)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	favSvc := services.NewFavoriteService(favRepo)

	return &Deps{
		HomeHandler:     &HomeHandler{Catalog: catalogSvc, Artisans: artisanSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc},
		ArtisanHandler:  &ArtisanHandler{Artisans: artisanSvc, Catalog: catalogSvc},
		SellerHandler:   &SellerHandler{Apps: onboarding.NewStore(), Onboard: onboardSvc},
		CartHandler:     &CartHandler{Cart: cartSvc},
		FavoriteHandler: &FavoriteHandler{Favs: favSvc},
		LangHandler:     &LangHandler{},
	}
}
