package main

import (
	"log"

	_ "github.com/megane-nerdo/skillhubnext/docs"
	"github.com/megane-nerdo/skillhubnext/internal/app"
)

// @title SkillHubNext API
// @version 1.0
// @description Job board backend with subscription-gated job posting.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
