// Package config provides configuration management for the superhero roster.
//
// The config package handles:
//   - Loading roster files (JSON or YAML) from a roster directory
//   - Roster validation
//   - Default roster selection, falling back to a built-in roster
//   - Roster discovery and listing
//   - Environment-driven application settings
//
// Roster Format:
//
// A roster file names a group of heroes. Each hero has a kind (base,
// elemental or tech), identity fields, an ordered list of powers, and the
// variant fields its kind needs:
//
//	{
//	  "name": "Classic",
//	  "description": "One hero of each kind",
//	  "heroes": [
//	    {"kind": "elemental", "name": "Pyra", "secret_identity": "Lena Ortiz",
//	     "base_of_operations": "Volcano Ridge", "powers": ["Fireball"],
//	     "element": "Fire"}
//	  ]
//	}
//
// Usage:
//
//	manager, err := config.NewManager("rosters")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	roster, err := manager.LoadRoster("classic")
//	rosters, err := manager.ListRosters()
package config
