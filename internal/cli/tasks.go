package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"checklist/internal/prefs"
	"checklist/internal/task"
	"checklist/internal/view"
)

func newAddCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task to the top of the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			t, err := s.ctrl.Add(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s  %s\n", t.ShortID(), t.Text)
			return nil
		},
	}
}

func newListCmd(a *App) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks using the saved filter",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			proj := s.ctrl.Projection()
			if filter != "" {
				f, ok := prefs.ParseFilter(filter)
				if !ok {
					return fmt.Errorf("unknown filter %q (want all|active|completed)", filter)
				}
				proj = view.Project(s.ctrl.Tasks().Tasks(), f)
			}
			writeProjection(cmd.OutOrStdout(), proj)
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "Show all|active|completed without saving the choice")
	return cmd
}

func writeProjection(w io.Writer, p view.Projection) {
	if p.Empty != nil {
		fmt.Fprintln(w, p.Empty.Message)
		if p.Empty.Hint != "" {
			fmt.Fprintln(w, p.Empty.Hint)
		}
	}
	for _, it := range p.Items {
		box := "[ ]"
		if it.Task.Completed {
			box = "[x]"
		}
		fmt.Fprintf(w, "%s %s  %s\n", box, it.Task.ShortID(), it.Task.Text)
	}
	fmt.Fprintf(w, "\n%d total, %d active, %d completed\n", p.Counts.Total, p.Counts.Active, p.Counts.Completed)
}

func newToggleCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <ref>",
		Aliases: []string{"done"},
		Short:   "Flip a task between active and completed",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			ref, err := resolve(s.ctrl.Tasks(), args[0])
			if err != nil {
				return err
			}
			t, err := s.ctrl.Toggle(ref.ID)
			if err != nil {
				return err
			}
			state := "active"
			if t.Completed {
				state = "completed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s %s\n", t.ShortID(), state)
			return nil
		},
	}
}

func newEditCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <ref> <text...>",
		Short: "Replace a task's text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			ref, err := resolve(s.ctrl.Tasks(), args[0])
			if err != nil {
				return err
			}
			s.ctrl.OpenEdit(ref.ID)
			t, err := s.ctrl.SaveEdit(strings.Join(args[1:], " "))
			if err != nil {
				s.ctrl.CancelEdit()
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s  %s\n", t.ShortID(), t.Text)
			return nil
		},
	}
}

func newRmCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <ref>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			ref, err := resolve(s.ctrl.Tasks(), args[0])
			if err != nil {
				return err
			}
			removed, err := s.ctrl.Delete(ref.ID, a.prompter(cmd))
			if err != nil {
				return err
			}
			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", ref.ShortID())
			}
			return nil
		},
	}
}

func newClearCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every completed task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			if n := s.ctrl.ClearCompleted(a.prompter(cmd)); n > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d\n", n)
			}
			return nil
		},
	}
}

func newFilterCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "filter [all|active|completed]",
		Short: "Show or save the list filter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			if len(args) == 1 && !s.ctrl.SetFilter(args[0]) {
				return fmt.Errorf("unknown filter %q (want all|active|completed)", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.ctrl.Filter())
			return nil
		},
	}
}

func newThemeCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark|toggle]",
		Short: "Show or save the color theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			switch {
			case len(args) == 0:
			case args[0] == "toggle":
				s.ctrl.ToggleTheme()
			case !s.ctrl.SetTheme(args[0]):
				return fmt.Errorf("unknown theme %q (want light|dark|toggle)", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.ctrl.Theme())
			return nil
		},
	}
}

func newExportCmd(a *App) *cobra.Command {
	var format, filter string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print every task as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			tasks := s.ctrl.Tasks().Tasks()
			if filter != "" {
				f, ok := prefs.ParseFilter(filter)
				if !ok {
					return fmt.Errorf("unknown filter %q (want all|active|completed)", filter)
				}
				tasks = s.ctrl.Tasks().Filtered(string(f))
			}
			var out []byte
			switch format {
			case "json":
				out, err = json.MarshalIndent(tasks, "", "  ")
				out = append(out, '\n')
			case "yaml":
				out, err = yaml.Marshal(tasks)
			default:
				return fmt.Errorf("unknown format %q (want json|yaml)", format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Output format (json|yaml)")
	cmd.Flags().StringVar(&filter, "filter", "", "Export only all|active|completed tasks")
	return cmd
}

func resolve(l *task.List, ref string) (task.Task, error) {
	t, err := l.Resolve(ref)
	switch {
	case errors.Is(err, task.ErrNotFound):
		return t, fmt.Errorf("no task matches %q", ref)
	case errors.Is(err, task.ErrAmbiguous):
		return t, fmt.Errorf("%q matches more than one task; use more characters", ref)
	}
	return t, err
}
