// Package service provides the business logic layer for the superhero roster.
//
// The service package implements:
//   - Recruiting heroes individually or from roster files
//   - Running hero actions and reporting their outcomes as events
//   - Per-hero action history with pagination
//
// Core Interfaces:
//
// HeroService is the main service interface. Registry stores recruited heroes
// and ConfigManager loads roster files.
//
// Usage:
//
//	registry := roster.NewManager()
//	configs, _ := config.NewManager("rosters")
//	heroes := service.NewHeroService(registry, configs)
//
//	infos, err := heroes.RecruitRoster(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := heroes.UsePower(ctx, infos[0].ID, 0, "high")
//
// Ownership:
//
// Every hero belongs to exactly one registry entry. The service serializes
// actions with a single lock, so callers never touch a character concurrently.
package service
