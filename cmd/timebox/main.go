package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	naturaldate "github.com/tj/go-naturaldate"

	"github.com/ChrisCruze/Timebox-Scheduler/internal/ai"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/config"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/energy"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/export"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/priority"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/reminder"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/schedule"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/store"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/task"
	"github.com/ChrisCruze/Timebox-Scheduler/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "timebox",
	Short: "Chronotype-aware daily task planner",
	Long:  "timebox scores your tasks across urgency, importance, effort and wellbeing, then packs them into time blocks aligned with your energy curve.",
}

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a task",
	RunE:  runAdd,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	RunE:  runList,
}

var doneCmd = &cobra.Command{
	Use:   "done [id...]",
	Short: "Mark tasks completed",
	RunE:  runDone,
}

var cancelCmd = &cobra.Command{
	Use:   "cancel [id]",
	Short: "Cancel a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runCancel,
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a daily plan",
	RunE:  runPlan,
}

var followCmd = &cobra.Command{
	Use:   "follow",
	Short: "Generate today's plan and follow it with reminders",
	RunE:  runFollow,
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop a running follow session",
	RunE:  runStop,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend what to work on next",
	RunE:  runRecommend,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Summarize the current task load",
	RunE:  runAnalyze,
}

var replanCmd = &cobra.Command{
	Use:   "replan [interrupted-task-id]",
	Short: "Replan the rest of the day after an interruption",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReplan,
}

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Show the energy curve for your chronotype",
	RunE:  runEnergy,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export today's plan",
	RunE:  runExport,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Open config file in your editor",
	RunE:  runConfig,
}

func init() {
	addCmd.Flags().String("desc", "", "Task description")
	addCmd.Flags().Int("duration", 30, "Duration in minutes")
	addCmd.Flags().String("priority", "medium", "Priority: low, medium, high, critical")
	addCmd.Flags().String("energy", "medium", "Energy requirement: low, medium, high")
	addCmd.Flags().Int("effort", 5, "Effort 1-10")
	addCmd.Flags().Int("reward", 5, "Reward 1-10")
	addCmd.Flags().String("flexibility", "flexible", "Flexibility: rigid, semi_flexible, flexible")
	addCmd.Flags().String("mode", "sync", "Mode: sync, async, hybrid")
	addCmd.Flags().String("location", "", "Where the task happens")
	addCmd.Flags().String("deadline", "", "Deadline, natural language allowed (e.g. \"friday 5pm\")")
	addCmd.Flags().StringSlice("depends-on", nil, "Task IDs this task depends on")
	addCmd.Flags().StringSlice("participants", nil, "People involved")
	addCmd.Flags().StringSlice("tools", nil, "Tools or resources needed")
	addCmd.Flags().Bool("ai", false, "Infer metadata from the title with the configured model")
	addCmd.Flags().Bool("samples", false, "Seed a set of sample tasks for a demo")

	planCmd.Flags().String("date", "", "Date to plan (YYYY-MM-DD, default today)")
	planCmd.Flags().Int("max-tasks", 0, "Override configured max task count")

	recommendCmd.Flags().Int("minutes", 60, "Available time in minutes")
	recommendCmd.Flags().String("energy", "medium", "Current energy level")
	recommendCmd.Flags().String("location", "", "Current location")
	recommendCmd.Flags().Int("top", 3, "Number of recommendations")

	replanCmd.Flags().Int("remaining", 0, "Remaining minutes of the interrupted task")
	replanCmd.Flags().String("at", "", "Interruption time (HH:MM, default now)")

	exportCmd.Flags().String("format", "text", "Export format: json, text, ics")
	exportCmd.Flags().String("output", "", "Write to file instead of stdout")
	exportCmd.Flags().String("date", "", "Date to plan (YYYY-MM-DD, default today)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(replanCmd)
	rootCmd.AddCommand(energyCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// buildPlanner assembles the scoring engine, energy model and allocator from
// the loaded configuration.
func buildPlanner(cfg *config.Config) (*priority.Engine, *energy.Model, *schedule.Allocator, error) {
	engine, err := priority.NewEngine(cfg.Weights)
	if err != nil {
		return nil, nil, nil, err
	}
	chrono, err := energy.ParseChronotype(cfg.Schedule.Chronotype)
	if err != nil {
		return nil, nil, nil, err
	}
	model, err := energy.For(chrono)
	if err != nil {
		return nil, nil, nil, err
	}
	return engine, model, schedule.NewAllocator(engine, model), nil
}

func openStore() (*store.DB, error) {
	db, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

func generatePlan(cfg *config.Config, db *store.DB, day time.Time, maxTasks int, now time.Time) (*schedule.Plan, error) {
	_, _, alloc, err := buildPlanner(cfg)
	if err != nil {
		return nil, err
	}
	tasks, err := db.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	if maxTasks == 0 {
		maxTasks = cfg.Schedule.MaxTasks
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), cfg.Schedule.WorkStart, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), cfg.Schedule.WorkEnd, 0, 0, 0, day.Location())

	return alloc.GenerateDailyPlan(schedule.Request{
		Tasks:         tasks,
		WindowStart:   start,
		WindowEnd:     end,
		BreakDuration: cfg.Schedule.BreakMinutes,
		MaxTasks:      maxTasks,
		Now:           now,
	}), nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if samples, _ := cmd.Flags().GetBool("samples"); samples {
		return seedSamples(db)
	}

	if len(args) == 0 {
		return fmt.Errorf("task title required")
	}
	title := strings.Join(args, " ")

	useAI, _ := cmd.Flags().GetBool("ai")
	if useAI {
		return addEnriched(cmd.Context(), cfg, db, title)
	}

	duration, _ := cmd.Flags().GetInt("duration")
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	t, err := task.New(title, duration, opts...)
	if err != nil {
		return err
	}
	if err := db.InsertTask(t); err != nil {
		return err
	}

	fmt.Printf("Added: %s (%s)\n", t.Title, shortID(t.ID))
	return nil
}

func optionsFromFlags(cmd *cobra.Command) ([]task.Option, error) {
	var opts []task.Option

	if desc, _ := cmd.Flags().GetString("desc"); desc != "" {
		opts = append(opts, task.WithDescription(desc))
	}

	prioStr, _ := cmd.Flags().GetString("priority")
	prio, err := task.ParsePriority(prioStr)
	if err != nil {
		return nil, err
	}
	opts = append(opts, task.WithPriority(prio))

	energyStr, _ := cmd.Flags().GetString("energy")
	level, err := task.ParseEnergyLevel(energyStr)
	if err != nil {
		return nil, err
	}
	opts = append(opts, task.WithEnergy(level))

	flexStr, _ := cmd.Flags().GetString("flexibility")
	flex, err := task.ParseFlexibility(flexStr)
	if err != nil {
		return nil, err
	}
	opts = append(opts, task.WithFlexibility(flex))

	modeStr, _ := cmd.Flags().GetString("mode")
	mode, err := task.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}
	opts = append(opts, task.WithMode(mode))

	effort, _ := cmd.Flags().GetInt("effort")
	reward, _ := cmd.Flags().GetInt("reward")
	opts = append(opts, task.WithEffort(effort), task.WithReward(reward))

	if loc, _ := cmd.Flags().GetString("location"); loc != "" {
		opts = append(opts, task.WithLocation(loc))
	}
	if deps, _ := cmd.Flags().GetStringSlice("depends-on"); len(deps) > 0 {
		opts = append(opts, task.WithDependencies(deps...))
	}
	if people, _ := cmd.Flags().GetStringSlice("participants"); len(people) > 0 {
		opts = append(opts, task.WithParticipants(people...))
	}
	if tools, _ := cmd.Flags().GetStringSlice("tools"); len(tools) > 0 {
		opts = append(opts, task.WithTools(tools...))
	}

	if deadlineStr, _ := cmd.Flags().GetString("deadline"); deadlineStr != "" {
		deadline, err := parseDeadline(deadlineStr)
		if err != nil {
			return nil, err
		}
		opts = append(opts, task.WithDeadline(deadline))
	}

	return opts, nil
}

func parseDeadline(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t.Add(24*time.Hour - time.Minute), nil // end of that day
	}
	t, err := naturaldate.Parse(s, time.Now(), naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing deadline %q: %w", s, err)
	}
	return t, nil
}

func addEnriched(ctx context.Context, cfg *config.Config, db *store.DB, description string) error {
	if !cfg.AI.Enabled {
		return fmt.Errorf("AI enrichment disabled — enable it in 'timebox config' and set an API key")
	}
	if cfg.AI.APIKey == "" {
		return fmt.Errorf("no API key configured — set ai.api_key or OPENAI_API_KEY")
	}

	provider := ai.NewOpenAI(cfg.AI.APIKey, cfg.AI.Model, nil)
	draft, err := provider.EnrichTask(ctx, description)
	if err != nil {
		return fmt.Errorf("enriching task: %w", err)
	}

	prio, err := task.ParsePriority(draft.Priority)
	if err != nil {
		return err
	}
	level, err := task.ParseEnergyLevel(draft.Energy)
	if err != nil {
		return err
	}
	flex, err := task.ParseFlexibility(draft.Flexibility)
	if err != nil {
		return err
	}

	t, err := task.New(draft.Title, draft.Duration,
		task.WithDescription(draft.Description),
		task.WithPriority(prio),
		task.WithEnergy(level),
		task.WithEffort(draft.Effort),
		task.WithReward(draft.Reward),
		task.WithFlexibility(flex),
		task.WithTools(draft.Tools...),
	)
	if err != nil {
		return err
	}
	if err := db.InsertTask(t); err != nil {
		return err
	}

	fmt.Printf("Added: %s (%s)\n", t.Title, shortID(t.ID))
	fmt.Printf("  %dmin, %s priority, %s energy, effort %d, reward %d\n",
		t.Duration, t.Priority, t.Energy, t.Effort, t.Reward)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	tasks, err := db.ListTasks()
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks yet — add one with 'timebox add'.")
		return nil
	}

	for _, t := range tasks {
		deadline := "-"
		if t.Deadline != nil {
			deadline = t.Deadline.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("  %s  %-30s  %4dmin  %-8s  %-6s  %-11s  %s\n",
			shortID(t.ID), t.Title, t.Duration, t.Priority, t.Energy, t.Status, deadline)
	}
	fmt.Printf("\n%d tasks\n", len(tasks))
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	ids := args
	if len(ids) == 0 {
		picked, err := pickTasks(db, "Mark tasks completed", true)
		if err != nil {
			return err
		}
		ids = picked
	}

	for _, id := range ids {
		t, err := db.GetTask(id)
		if err != nil {
			return err
		}
		if err := db.UpdateStatus(t.ID, task.StatusCompleted); err != nil {
			return err
		}
		fmt.Printf("Completed: %s\n", t.Title)
	}
	return nil
}

func runCancel(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	t, err := db.GetTask(args[0])
	if err != nil {
		return err
	}
	if err := db.UpdateStatus(t.ID, task.StatusCancelled); err != nil {
		return err
	}
	fmt.Printf("Cancelled: %s\n", t.Title)
	return nil
}

// pickTasks shows the interactive picker over schedulable tasks and returns
// the chosen IDs.
func pickTasks(db *store.DB, title string, multi bool) ([]string, error) {
	tasks, err := db.ListTasks()
	if err != nil {
		return nil, err
	}
	var open []*task.Task
	for _, t := range tasks {
		if t.Status.Schedulable() {
			open = append(open, t)
		}
	}
	if len(open) == 0 {
		return nil, fmt.Errorf("no open tasks")
	}

	app := tui.NewPickerApp(title, open, multi)
	p := tea.NewProgram(app)
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}

	result := app.GetResult()
	if result == nil || result.Canceled {
		return nil, fmt.Errorf("cancelled")
	}
	return result.TaskIDs, nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	day, err := resolveDate(cmd)
	if err != nil {
		return err
	}
	maxTasks, _ := cmd.Flags().GetInt("max-tasks")

	plan, err := generatePlan(cfg, db, day, maxTasks, time.Now())
	if err != nil {
		return err
	}

	out, err := export.Render(plan, export.FormatText)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

func resolveDate(cmd *cobra.Command) (time.Time, error) {
	dateStr, _ := cmd.Flags().GetString("date")
	if dateStr == "" {
		return time.Now(), nil
	}
	day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", dateStr, err)
	}
	return day, nil
}

func runFollow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	plan, err := generatePlan(cfg, db, time.Now(), 0, time.Now())
	if err != nil {
		return err
	}
	if len(plan.Entries) == 0 {
		fmt.Println("Nothing to follow — the plan is empty.")
		return nil
	}

	out, _ := export.Render(plan, export.FormatText)
	fmt.Print(string(out))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	return reminder.New(cfg, plan).Run(ctx)
}

func runStop(cmd *cobra.Command, args []string) error {
	pid, err := reminder.ReadPID()
	if err != nil {
		return err
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("finding process %d: %w", pid, err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("sending stop signal: %w", err)
	}

	fmt.Printf("Sent stop signal to timebox (PID %d)\n", pid)
	return nil
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	engine, err := priority.NewEngine(cfg.Weights)
	if err != nil {
		return err
	}

	minutes, _ := cmd.Flags().GetInt("minutes")
	energyStr, _ := cmd.Flags().GetString("energy")
	location, _ := cmd.Flags().GetString("location")
	topN, _ := cmd.Flags().GetInt("top")

	level, err := task.ParseEnergyLevel(energyStr)
	if err != nil {
		return err
	}

	tasks, err := db.ListTasks()
	if err != nil {
		return err
	}

	ranked := engine.Recommend(tasks, priority.Constraints{
		Energy:   level,
		Location: location,
		Duration: minutes,
	}, time.Now(), topN)

	if len(ranked) == 0 {
		fmt.Println("No tasks match your current energy and time.")
		return nil
	}

	fmt.Printf("Top picks (%d min available, %s energy):\n\n", minutes, level)
	for i, r := range ranked {
		fmt.Printf("%d. %s (%s)\n", i+1, r.Task.Title, shortID(r.Task.ID))
		fmt.Printf("   %dmin | score %.3f (urgency %.2f, importance %.2f, effort %.2f, wellbeing %.2f)\n",
			r.Task.Duration, r.Score.Composite,
			r.Score.Urgency, r.Score.Importance, r.Score.Effort, r.Score.Wellbeing)
		fmt.Printf("   %s\n", r.Rationale)
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	tasks, err := db.ListTasks()
	if err != nil {
		return err
	}

	a := schedule.Analyze(tasks, time.Now())

	fmt.Printf("Total tasks:      %d\n", a.TotalTasks)
	fmt.Printf("  Incomplete:     %d\n", a.IncompleteTasks)
	fmt.Printf("  Completed:      %d\n", a.CompletedTasks)
	fmt.Printf("  Overdue:        %d\n", a.OverdueTasks)
	if len(a.OverdueTitles) > 0 {
		fmt.Printf("  Overdue titles: %s\n", strings.Join(a.OverdueTitles, ", "))
	}
	fmt.Printf("Open duration:    %.1fh\n", a.TotalDurationHours)
	fmt.Printf("Average effort:   %.1f/10\n", a.AverageEffort)

	fmt.Println("\nEnergy distribution:")
	for _, level := range []task.EnergyLevel{task.EnergyHigh, task.EnergyMedium, task.EnergyLow} {
		fmt.Printf("  %-6s  %d\n", level, a.EnergyDistribution[level])
	}
	fmt.Println("\nPriority distribution:")
	for _, p := range []task.Priority{task.PriorityCritical, task.PriorityHigh, task.PriorityMedium, task.PriorityLow} {
		fmt.Printf("  %-8s  %d\n", p, a.PriorityDistribution[p])
	}
	return nil
}

func runReplan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	remaining, _ := cmd.Flags().GetInt("remaining")
	if remaining <= 0 {
		return fmt.Errorf("--remaining must be a positive number of minutes")
	}

	var id string
	if len(args) == 1 {
		t, err := db.GetTask(args[0])
		if err != nil {
			return err
		}
		id = t.ID
	} else {
		picked, err := pickTasks(db, "Which task was interrupted?", false)
		if err != nil {
			return err
		}
		id = picked[0]
	}

	now := time.Now()
	if at, _ := cmd.Flags().GetString("at"); at != "" {
		parsed, err := time.ParseInLocation("15:04", at, time.Local)
		if err != nil {
			return fmt.Errorf("parsing time %q: %w", at, err)
		}
		now = time.Date(now.Year(), now.Month(), now.Day(),
			parsed.Hour(), parsed.Minute(), 0, 0, time.Local)
	}

	_, _, alloc, err := buildPlanner(cfg)
	if err != nil {
		return err
	}
	replanner := schedule.NewReplanner(alloc, cfg.Schedule.WorkEnd, cfg.Schedule.BreakMinutes, cfg.Schedule.MaxTasks)

	tasks, err := db.ListTasks()
	if err != nil {
		return err
	}

	plan, err := replanner.ReplanOnInterruption(tasks, now, id, remaining)
	if err != nil {
		return err
	}

	out, err := export.Render(plan, export.FormatText)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

func runEnergy(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, model, _, err := buildPlanner(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Energy curve (%s):\n\n", model.Chronotype())
	for _, block := range model.Report() {
		fmt.Printf("  %s–%s  %s\n", block.Start, block.End, strings.ToUpper(string(block.Level)))
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	formatStr, _ := cmd.Flags().GetString("format")
	format, err := export.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	day, err := resolveDate(cmd)
	if err != nil {
		return err
	}

	plan, err := generatePlan(cfg, db, day, 0, time.Now())
	if err != nil {
		return err
	}

	out, err := export.Render(plan, format)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := os.WriteFile(path, out, 0644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Printf("Plan exported to %s\n", path)
		return nil
	}

	fmt.Print(string(out))
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := config.WriteDefault(configPath); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	fmt.Printf("Opening %s with %s...\n", configPath, editor)

	proc := os.ProcAttr{
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	}
	process, err := os.StartProcess(editor, []string{editor, configPath}, &proc)
	if err != nil {
		// If editor fails, just print the path
		fmt.Printf("Could not open editor. Config file is at: %s\n", configPath)
		return nil
	}
	_, err = process.Wait()
	return err
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func seedSamples(db *store.DB) error {
	now := time.Now()
	type sample struct {
		title string
		dur   int
		opts  []task.Option
	}
	samples := []sample{
		{"Write project proposal", 120, []task.Option{
			task.WithDescription("Draft Q4 project proposal for new feature"),
			task.WithPriority(task.PriorityHigh),
			task.WithDeadline(now.Add(48 * time.Hour)),
			task.WithEnergy(task.EnergyHigh),
			task.WithEffort(8), task.WithReward(9),
			task.WithFlexibility(task.FlexSemiFlexible),
			task.WithTools("laptop", "research notes"),
		}},
		{"Team standup meeting", 30, []task.Option{
			task.WithDescription("Daily sync with development team"),
			task.WithEnergy(task.EnergyMedium),
			task.WithEffort(3), task.WithReward(5),
			task.WithFlexibility(task.FlexRigid),
			task.WithParticipants("team"),
			task.WithLocation("office"),
		}},
		{"Code review", 60, []task.Option{
			task.WithDescription("Review pull requests from team members"),
			task.WithEffort(6), task.WithReward(6),
			task.WithTools("laptop"),
		}},
		{"Email responses", 45, []task.Option{
			task.WithDescription("Clear inbox and respond to urgent emails"),
			task.WithPriority(task.PriorityLow),
			task.WithEnergy(task.EnergyLow),
			task.WithEffort(3), task.WithReward(4),
			task.WithTools("laptop", "phone"),
		}},
		{"Strategic planning session", 90, []task.Option{
			task.WithDescription("Plan roadmap for next quarter"),
			task.WithPriority(task.PriorityCritical),
			task.WithDeadline(now.Add(24 * time.Hour)),
			task.WithEnergy(task.EnergyHigh),
			task.WithEffort(9), task.WithReward(10),
			task.WithFlexibility(task.FlexSemiFlexible),
			task.WithParticipants("leadership team"),
		}},
		{"Update documentation", 60, []task.Option{
			task.WithDescription("Document recent API changes"),
			task.WithEffort(5), task.WithReward(5),
			task.WithTools("laptop"),
		}},
	}

	for _, s := range samples {
		t, err := task.New(s.title, s.dur, s.opts...)
		if err != nil {
			return err
		}
		if err := db.InsertTask(t); err != nil {
			return err
		}
	}

	fmt.Printf("Added %d sample tasks.\n", len(samples))
	return nil
}
