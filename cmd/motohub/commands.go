package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/motohub/internal/config"
	"github.com/muurk/motohub/internal/garage"
	"github.com/muurk/motohub/internal/hub"
	"github.com/muurk/motohub/internal/logging"
	"github.com/muurk/motohub/internal/notify"
	"github.com/muurk/motohub/internal/session"
	"github.com/muurk/motohub/internal/tui"
	"github.com/muurk/motohub/internal/ui"
)

// Command flags
var (
	outputFormat string
	assignments  []string
	forceInit    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(vehicleCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(configCmd)
}

func newHub() *hub.Hub {
	profile, settings, vehicles := cfg.SeedData()
	return hub.New(profile, settings, vehicles, notify.New(cfg.ToastDuration()), hub.WithPosts(cfg.SeedPosts()))
}

// tuiCmd launches the interactive profile page
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive profile page",
	Long: `Launch the full-screen profile page.

Press a to add a vehicle, e to edit the selected one, p to edit the
profile and s for settings. Dialogs save with enter and discard with esc.`,
	Example: `  motohub tui
  # Or simply (tui is default):
  motohub

  # Start in dark mode
  motohub --theme dark`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := tui.Run(newHub()); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// showCmd prints the profile page
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile, settings and garage",
	Example: `  motohub show
  motohub show --format compact
  motohub show --format json`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	h := newHub()

	switch outputFormat {
	case "json":
		return printJSON(struct {
			Profile  garage.Profile   `json:"profile"`
			Settings garage.Settings  `json:"settings"`
			Vehicles []garage.Vehicle `json:"vehicles"`
			Posts    []garage.Post    `json:"posts"`
		}{h.Profile, h.Settings, h.Vehicles, h.Posts})
	case "compact":
		fmt.Print(h.Profile.FormatCompact())
		for _, v := range h.Vehicles {
			fmt.Println(v.Summary())
		}
		for _, post := range h.Posts {
			fmt.Println(post.Summary())
		}
	default:
		p := ui.NewPrinter(os.Stdout)
		p.PrintProfile(h.Profile)
		p.PrintSettings(h.Settings)
		p.PrintHeader("Garage", "", ui.Param{Key: "Vehicles", Value: fmt.Sprint(len(h.Vehicles))})
		p.PrintGarage(h.Vehicles)
		p.PrintHeader("Posts", "", ui.Param{Key: "Posts", Value: fmt.Sprint(len(h.Posts))})
		p.PrintPosts(h.Posts, h.Now())
	}
	return nil
}

// vehicleCmd groups the vehicle edit commands
var vehicleCmd = &cobra.Command{
	Use:   "vehicle",
	Short: "Add or edit a vehicle",
	Long: `Run one vehicle edit session without the interactive page.

Fields are set with --set key=value. Vehicle fields are name, type
(motorcycle or car), make, model, year and color; specifications use their
slug: engine, power, torque, transmission, fuel_capacity, mileage and
kerb_weight. Unparseable years keep the previous value.

Changes are not saved; the resulting garage is printed.`,
}

var vehicleAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Add a vehicle",
	Example: `  motohub vehicle add --set name="Weekend Twin" --set make=Triumph --set model="Speed Twin" --set engine=1200cc`,
	Args:    cobra.NoArgs,
	RunE:    runVehicleAdd,
}

var vehicleEditCmd = &cobra.Command{
	Use:     "edit <id>",
	Short:   "Edit a vehicle",
	Example: `  motohub vehicle edit 1 --set color="Gunmetal Grey" --set mileage="37 kmpl"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runVehicleEdit,
}

// profileCmd groups the profile commands
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Edit the profile",
}

var profileEditCmd = &cobra.Command{
	Use:     "edit",
	Short:   "Edit name, location and bio",
	Example: `  motohub profile edit --set location="Pune, Maharashtra"`,
	Args:    cobra.NoArgs,
	RunE:    runProfileEdit,
}

// settingsCmd groups the settings commands
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Change account settings",
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings flags",
	Long: `Change settings flags: email_notifications, push_notifications,
dark_mode and private_profile. Values are on/off, true/false, yes/no or 1/0.`,
	Example: `  motohub settings set --set dark_mode=on --set push_notifications=off`,
	Args:    cobra.NoArgs,
	RunE:    runSettingsSet,
}

// postCmd groups the post commands
var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Share or edit a post",
	Long: `Run one post session without the interactive page.

Fields are content and type (photo, ride or route). A post with no
content is not shared. Changes are not saved; the resulting posts are
printed.`,
}

var postCreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Share a new post",
	Example: `  motohub post create --set type=ride --set content="Weekend ride to Lonavala"`,
	Args:    cobra.NoArgs,
	RunE:    runPostCreate,
}

var postEditCmd = &cobra.Command{
	Use:     "edit <id>",
	Short:   "Edit a seeded post",
	Example: `  motohub post edit post-1 --set content="Updated ride notes"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runPostEdit,
}

func init() {
	for _, c := range []*cobra.Command{vehicleAddCmd, vehicleEditCmd, profileEditCmd, settingsSetCmd, postCreateCmd, postEditCmd} {
		c.Flags().StringArrayVar(&assignments, "set", nil, "Field assignment key=value (repeatable)")
	}
	vehicleCmd.AddCommand(vehicleAddCmd, vehicleEditCmd)
	profileCmd.AddCommand(profileEditCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	postCmd.AddCommand(postCreateCmd, postEditCmd)
}

// fieldSetter is the part of a session controller the commands need
type fieldSetter interface {
	SetField(name, value string) error
	Cancel()
}

// assignment is one parsed --set flag
type assignment struct {
	Key   string
	Value string
}

func parseAssignments(raw []string) ([]assignment, error) {
	out := make([]assignment, 0, len(raw))
	for _, r := range raw {
		k, v, ok := strings.Cut(r, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q (want key=value)", r)
		}
		out = append(out, assignment{Key: k, Value: v})
	}
	return out, nil
}

// applyAssignments sets every field or cancels the session on the first
// unknown field.
func applyAssignments(ctrl fieldSetter, raw []string) error {
	parsed, err := parseAssignments(raw)
	if err != nil {
		ctrl.Cancel()
		return err
	}
	for _, a := range parsed {
		if err := ctrl.SetField(a.Key, a.Value); err != nil {
			ctrl.Cancel()
			return err
		}
	}
	return nil
}

func runVehicleAdd(cmd *cobra.Command, args []string) error {
	h := newHub()
	ctrl := h.AddVehicle()
	if err := applyAssignments(ctrl, assignments); err != nil {
		return err
	}
	v, err := ctrl.Commit()
	if err != nil {
		return err
	}
	logging.Info("Vehicle added", zap.String("id", v.ID))
	return printVehicles(h, v)
}

func runVehicleEdit(cmd *cobra.Command, args []string) error {
	h := newHub()
	ctrl, err := h.EditVehicle(args[0])
	if err != nil {
		return err
	}
	if err := applyAssignments(ctrl, assignments); err != nil {
		return err
	}
	v, err := ctrl.Commit()
	if err != nil {
		return err
	}
	return printVehicles(h, v)
}

func runProfileEdit(cmd *cobra.Command, args []string) error {
	h := newHub()
	ctrl := h.EditProfile()
	if err := applyAssignments(ctrl, assignments); err != nil {
		return err
	}
	if _, err := ctrl.Commit(); err != nil {
		return err
	}

	switch outputFormat {
	case "json":
		return printJSON(h.Profile)
	case "compact":
		fmt.Print(h.Profile.FormatCompact())
	default:
		p := ui.NewPrinter(os.Stdout)
		p.PrintProfile(h.Profile)
		printToasts(p, h)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	h := newHub()
	ctrl := h.EditSettings()
	if err := applyAssignments(ctrl, assignments); err != nil {
		return err
	}
	if _, err := ctrl.Commit(); err != nil {
		return err
	}

	switch outputFormat {
	case "json":
		return printJSON(h.Settings)
	case "compact":
		fmt.Print(h.Settings.FormatDetailed())
	default:
		// Printer picks up the theme the settings just applied
		p := ui.NewPrinter(os.Stdout)
		p.PrintSettings(h.Settings)
		printToasts(p, h)
	}
	return nil
}

func runPostCreate(cmd *cobra.Command, args []string) error {
	h := newHub()
	return commitPost(h, h.NewPost())
}

func runPostEdit(cmd *cobra.Command, args []string) error {
	h := newHub()
	ctrl, err := h.EditPost(args[0])
	if err != nil {
		return err
	}
	return commitPost(h, ctrl)
}

func commitPost(h *hub.Hub, ctrl *session.Controller[garage.Post]) error {
	if err := applyAssignments(ctrl, assignments); err != nil {
		return err
	}
	post, err := ctrl.Commit()
	if err != nil {
		return err
	}
	if strings.TrimSpace(post.Content) == "" {
		return fmt.Errorf("post has no content; nothing shared")
	}

	switch outputFormat {
	case "json":
		return printJSON(h.Posts)
	case "compact":
		for _, p := range h.Posts {
			fmt.Println(p.Summary())
		}
	default:
		p := ui.NewPrinter(os.Stdout)
		p.PrintPosts(h.Posts, h.Now())
		printToasts(p, h)
	}
	return nil
}

func printVehicles(h *hub.Hub, changed garage.Vehicle) error {
	switch outputFormat {
	case "json":
		return printJSON(h.Vehicles)
	case "compact":
		for _, v := range h.Vehicles {
			fmt.Println(v.Summary())
		}
	default:
		p := ui.NewPrinter(os.Stdout)
		p.PrintGarage(h.Vehicles)
		printToasts(p, h)
		logging.Debug("Garage printed", zap.String("changed", changed.ID))
	}
	return nil
}

func printToasts(p *ui.Printer, h *hub.Hub) {
	for _, t := range h.Notifier.Active() {
		p.PrintToast(t.Title, t.Description)
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// configCmd groups the configuration file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
	// The file may be missing or broken; only logging is set up
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configPath != "" {
			fmt.Println(configPath)
			return nil
		}
		p, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long: `Write a configuration file with default preferences and the sample
garage as seed data. An existing file is only replaced after confirmation
or with --force.`,
	Example: `  motohub config init
  motohub config init --config ./motohub.yaml --force`,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file without asking")
	configCmd.AddCommand(configPathCmd, configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	p := ui.NewPrinter(os.Stdout)

	path, err := config.CreateDefaultConfig(configPath, forceInit)
	if err != nil && !forceInit && path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			if !ui.IsTerminal() || !p.Confirm(os.Stdin, "Replace configuration", []string{path + " already exists"}) {
				return err
			}
			path, err = config.CreateDefaultConfig(configPath, true)
		}
	}
	if err != nil {
		return err
	}

	p.PrintSuccess("Configuration written", ui.Param{Key: "Path", Value: path})
	return nil
}
