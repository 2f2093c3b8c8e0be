package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dodorz/gridboard/internal/card"
	"github.com/dodorz/gridboard/internal/config"
	"github.com/dodorz/gridboard/internal/layout"
	"github.com/dodorz/gridboard/internal/store"
	"github.com/dodorz/gridboard/internal/workspace"
)

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

// editConfigFile opens the config in the user's editor, creating the
// default file first if it doesn't exist yet.
func editConfigFile() error {
	if _, err := config.LoadUserConfig(); err != nil {
		return fmt.Errorf("could not prepare config file: %w", err)
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	editor := findEditor()
	if editor == "" {
		return fmt.Errorf("no editor found: set $EDITOR or install vim, vi, nano, or emacs")
	}

	cmd := exec.Command(editor, path) // #nosec G204 -- editor comes from the user's own environment
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}
	return nil
}

func findEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if editor := os.Getenv(env); editor != "" {
			return editor
		}
	}
	for _, candidate := range []string{"vim", "vi", "nano", "emacs"} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path
		}
	}
	return ""
}

func resetConfigToDefaults() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("This will overwrite %s with defaults. Continue? [y/N] ", path)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("could not remove existing config: %w", err)
		}
	}

	if _, err := config.LoadUserConfig(); err != nil {
		return fmt.Errorf("could not write default config: %w", err)
	}
	fmt.Printf("Configuration reset to defaults: %s\n", path)
	return nil
}

func loadWorkspace() (workspace.Workspace, string, error) {
	path, err := store.DefaultPath()
	if err != nil {
		return workspace.Workspace{}, "", fmt.Errorf("could not resolve workspace path: %w", err)
	}
	w, err := store.Load(path)
	if err != nil {
		return workspace.Workspace{}, "", fmt.Errorf("could not load workspace: %w", err)
	}
	return w, path, nil
}

func listProfiles() error {
	w, _, err := loadWorkspace()
	if err != nil {
		return err
	}
	if len(w.Profiles) == 0 {
		fmt.Println("No saved profiles.")
		return nil
	}
	for _, p := range w.Profiles {
		marker := " "
		if p.ID == w.CurrentProfileID {
			marker = "*"
		}
		ratio := "any ratio"
		if p.RatioRange != nil {
			ratio = fmt.Sprintf("ratio %.2f-%.2f", p.RatioRange.Min, p.RatioRange.Max)
		}
		pinned := ""
		if p.Pinned {
			pinned = " (pinned)"
		}
		fmt.Printf("%s %-20s %d cards, %s%s\n", marker, p.Name, len(p.Layout.Cards), ratio, pinned)
	}
	return nil
}

func showProfile(name string) error {
	w, _, err := loadWorkspace()
	if err != nil {
		return err
	}
	p := profileByName(w, name)
	if p == nil {
		return fmt.Errorf("no profile named %q", name)
	}
	fmt.Printf("%s (%d columns)\n", p.Name, p.Layout.Columns)
	for _, c := range p.Layout.Cards {
		flags := ""
		if c.Hidden {
			flags += " hidden"
		}
		if c.Locked {
			flags += " locked"
		}
		fmt.Printf("  %-12s %-16s at (%d,%d) %dx%d%s\n",
			card.KindName(c.Kind), c.DisplayTitle(), c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, flags)
	}
	return nil
}

func deleteProfile(name string) error {
	w, path, err := loadWorkspace()
	if err != nil {
		return err
	}
	p := profileByName(w, name)
	if p == nil {
		return fmt.Errorf("no profile named %q", name)
	}
	w.DeleteProfile(p.ID)
	if err := store.Save(path, w); err != nil {
		return fmt.Errorf("could not save workspace: %w", err)
	}
	fmt.Printf("Deleted profile %q.\n", name)
	return nil
}

func exportProfile(name string) error {
	w, _, err := loadWorkspace()
	if err != nil {
		return err
	}
	p := profileByName(w, name)
	if p == nil {
		return fmt.Errorf("no profile named %q", name)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode profile: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func profileByName(w workspace.Workspace, name string) *workspace.Profile {
	for i := range w.Profiles {
		if strings.EqualFold(w.Profiles[i].Name, name) {
			return &w.Profiles[i]
		}
	}
	return nil
}

// checkWorkspace validates the committed layout and every profile,
// printing findings. Exits non-zero when anything is structurally off.
func checkWorkspace() error {
	path, err := store.DefaultPath()
	if err != nil {
		return fmt.Errorf("could not resolve workspace path: %w", err)
	}
	// Raw load: check should see the file as it is on disk, not the
	// self-healed version Load hands interactive use.
	w, err := store.LoadRaw(path)
	if err != nil {
		return fmt.Errorf("could not load workspace: %w", err)
	}
	fmt.Printf("Checking %s\n", path)

	broken := 0
	broken += reportIssues("current layout", layout.Validate(w.Committed))
	for _, p := range w.Profiles {
		broken += reportIssues("profile "+p.Name, layout.Validate(p.Layout))
	}

	if broken > 0 {
		return fmt.Errorf("%d issue(s) found", broken)
	}
	fmt.Println("No issues found.")
	return nil
}

func reportIssues(label string, rep layout.Report) int {
	for _, issue := range rep.Issues {
		detail := ""
		if issue.Detail != "" {
			detail = ": " + issue.Detail
		}
		fmt.Printf("  %s: %s on card %s%s\n", label, issue.Kind, issue.CardID, detail)
	}
	return len(rep.Issues)
}
