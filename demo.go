package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/wricardo/superheroes/hero/character"
	"github.com/wricardo/superheroes/hero/config"
	"github.com/wricardo/superheroes/hero/service"
)

// demo walks every hero of a roster through its actions and prints what
// happened
type demo struct {
	heroes   service.HeroService
	out      io.Writer
	jsonMode bool
}

func newDemo(heroes service.HeroService, out io.Writer, jsonMode bool) *demo {
	return &demo{heroes: heroes, out: out, jsonMode: jsonMode}
}

// Run recruits the roster and exercises each hero in order
func (d *demo) Run(ctx context.Context, rosterName string) error {
	infos, err := d.heroes.RecruitRoster(ctx, rosterName)
	if err != nil {
		return err
	}

	for _, info := range infos {
		if err := d.exercise(ctx, info); err != nil {
			return fmt.Errorf("demo %s: %w", info.Hero.Name, err)
		}
	}
	return nil
}

func (d *demo) exercise(ctx context.Context, info *service.HeroInfo) error {
	id := info.ID
	fmt.Fprintf(d.out, "\n=== %s (%s hero, %s) ===\n", info.Hero.Name, info.Hero.Kind, info.Hero.BaseOfOperations)
	fmt.Fprintf(d.out, "Powers: %v | Weakness: %s\n", info.Hero.Powers, info.Hero.Weakness)

	if err := d.printStatus(ctx, id); err != nil {
		return err
	}

	// Powers are locked until the hero transforms
	steps := []func() (*service.ActionResult, error){
		func() (*service.ActionResult, error) { return d.heroes.UsePower(ctx, id, 0, "") },
		func() (*service.ActionResult, error) { return d.heroes.Transform(ctx, id) },
		func() (*service.ActionResult, error) { return d.heroes.UsePower(ctx, id, 0, string(character.Low)) },
		func() (*service.ActionResult, error) {
			return d.heroes.UsePower(ctx, id, len(info.Hero.Powers)-1, string(character.Medium))
		},
		func() (*service.ActionResult, error) { return d.heroes.UsePower(ctx, id, 0, string(character.High)) },
		func() (*service.ActionResult, error) { return d.heroes.UsePower(ctx, id, len(info.Hero.Powers), "") },
	}
	if err := d.runSteps(steps); err != nil {
		return err
	}

	switch info.Hero.Kind {
	case character.KindBase:
		err := d.runSteps([]func() (*service.ActionResult, error){
			func() (*service.ActionResult, error) { return d.heroes.UsePower(ctx, id, 0, string(character.High)) },
			func() (*service.ActionResult, error) { return d.heroes.UsePower(ctx, id, 0, string(character.High)) },
		})
		if err != nil {
			return err
		}
	case character.KindElemental:
		err := d.runSteps([]func() (*service.ActionResult, error){
			func() (*service.ActionResult, error) { return d.heroes.UsePower(ctx, id, 0, string(character.High)) },
			func() (*service.ActionResult, error) { return d.heroes.UsePower(ctx, id, 0, string(character.Low)) },
			func() (*service.ActionResult, error) { return d.heroes.ChargeElement(ctx, id) },
		})
		if err != nil {
			return err
		}
	case character.KindTech:
		var gadgetSteps []func() (*service.ActionResult, error)
		for _, gadget := range sortedGadgets(info.Hero.Gadgets) {
			gadgetSteps = append(gadgetSteps, func() (*service.ActionResult, error) { return d.heroes.UseGadget(ctx, id, gadget) })
		}
		gadgetSteps = append(gadgetSteps,
			func() (*service.ActionResult, error) { return d.heroes.UseGadget(ctx, id, "Unobtainium Ray") },
			func() (*service.ActionResult, error) { return d.heroes.RepairTech(ctx, id) },
		)
		if err := d.runSteps(gadgetSteps); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown hero kind %q", info.Hero.Kind)
	}

	if err := d.runSteps([]func() (*service.ActionResult, error){
		func() (*service.ActionResult, error) { return d.heroes.Rest(ctx, id) },
	}); err != nil {
		return err
	}

	return d.printStatus(ctx, id)
}

func (d *demo) runSteps(steps []func() (*service.ActionResult, error)) error {
	for _, step := range steps {
		result, err := step()
		if err != nil {
			return err
		}
		if err := d.printResult(result); err != nil {
			return err
		}
	}
	return nil
}

func (d *demo) printResult(result *service.ActionResult) error {
	if d.jsonMode {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		_, err = fmt.Fprintln(d.out, string(data))
		return err
	}

	mark := "ok"
	if !result.Success {
		mark = string(result.Outcome)
	}
	_, err := fmt.Fprintf(d.out, "[%-27s] %s\n", mark, result.Message)
	return err
}

func (d *demo) printStatus(ctx context.Context, id string) error {
	status, err := d.heroes.Status(ctx, id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(d.out, "Status: %s\n", status)
	return err
}

func sortedGadgets(gadgets map[string]int) []string {
	names := make([]string, 0, len(gadgets))
	for name := range gadgets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// listRosters prints one line per roster file
func listRosters(ctx context.Context, heroes service.HeroService, out io.Writer) error {
	rosters, err := heroes.ListRosters(ctx)
	if err != nil {
		return err
	}
	if len(rosters) == 0 {
		fmt.Fprintln(out, "No roster files found; the built-in roster will be used.")
		return nil
	}
	for _, r := range rosters {
		fmt.Fprintf(out, "%-16s %-24s %d heroes  %s\n", r.RosterID, r.Name, r.HeroCount, r.Description)
	}
	return nil
}

// validateFiles validates each roster file and returns how many failed
func validateFiles(files []string, out io.Writer) int {
	failed := 0
	for _, file := range files {
		roster, err := config.ReadRosterFile(file)
		if err != nil {
			failed++
			fmt.Fprintf(out, "✗ %s: %v\n", filepath.Base(file), err)
			continue
		}
		fmt.Fprintf(out, "✓ %s: %s (%d heroes)\n", filepath.Base(file), roster.Name, len(roster.Heroes))
	}
	return failed
}
