package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jwalitptl/noill-admin/internal/model"
	"github.com/jwalitptl/noill-admin/internal/repository/memory"
	"github.com/jwalitptl/noill-admin/pkg/logger"
)

type lister func(ctx context.Context, s *services, filter model.ListFilter, w *tabwriter.Writer) (any, error)

// listers maps the list command's screen argument to its printer. Each
// printer writes tab separated rows and returns the raw value for --json.
var listers = map[string]lister{
	"dashboard": func(ctx context.Context, s *services, _ model.ListFilter, w *tabwriter.Writer) (any, error) {
		d, err := s.dashboard.Get(ctx)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(w, "PATIENT\tACTIVITY\tTIME\tSTATUS")
		for _, a := range d.Activities {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Patient, a.Label(), a.Time, a.Status)
		}
		return d, nil
	},
	"patients": func(ctx context.Context, s *services, f model.ListFilter, w *tabwriter.Writer) (any, error) {
		res, err := s.patient.List(ctx, f)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(w, "ID\tNAME\tAGE\tPHONE\tEMAIL\tSTATUS")
		for _, p := range res.Items {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Age, p.Phone, p.Email, p.Status)
		}
		return res, nil
	},
	"appointments": func(ctx context.Context, s *services, f model.ListFilter, w *tabwriter.Writer) (any, error) {
		res, err := s.appointment.List(ctx, f)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(w, "ID\tPATIENT\tDOCTOR\tDATE\tTIME\tSTATUS")
		for _, a := range res.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", a.ID, a.PatientName, a.DoctorName, a.Date, a.Time, a.Status)
		}
		return res, nil
	},
	"staff": func(ctx context.Context, s *services, f model.ListFilter, w *tabwriter.Writer) (any, error) {
		res, err := s.staff.List(ctx, f)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(w, "ID\tNAME\tROLE\tDEPARTMENT\tSTATUS")
		for _, m := range res.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Role, m.Department, m.Status)
		}
		return res, nil
	},
	"schedule": func(ctx context.Context, s *services, _ model.ListFilter, w *tabwriter.Writer) (any, error) {
		days, err := s.staff.Schedule(ctx)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(w, "DAY\tMORNING\tEVENING\tNIGHT")
		for _, d := range days {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Day, d.Morning, d.Evening, d.Night)
		}
		return days, nil
	},
	"records": func(ctx context.Context, s *services, f model.ListFilter, w *tabwriter.Writer) (any, error) {
		res, err := s.medical.List(ctx, f)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(w, "ID\tPATIENT\tPATIENT ID\tTYPE\tDATE\tSTATUS")
		for _, r := range res.Items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.PatientName, r.PatientID, r.RecordType, r.Date, r.Status)
		}
		return res, nil
	},
	"invoices": func(ctx context.Context, s *services, f model.ListFilter, w *tabwriter.Writer) (any, error) {
		res, err := s.billing.Invoices(ctx, f)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(w, "ID\tPATIENT\tDATE\tDUE\tAMOUNT\tSTATUS")
		for _, inv := range res.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t$%.2f\t%s\n", inv.ID, inv.PatientName, inv.Date, inv.DueDate, inv.Amount, inv.Status)
		}
		return res, nil
	},
	"payments": func(ctx context.Context, s *services, _ model.ListFilter, w *tabwriter.Writer) (any, error) {
		res, err := s.billing.Payments(ctx)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(w, "DATE\tPATIENT\tAMOUNT\tMETHOD\tSTATUS")
		for _, p := range res.Items {
			fmt.Fprintf(w, "%s\t%s\t$%.2f\t%s\t%s\n", p.Date, p.Patient, p.Amount, p.Method, p.Status)
		}
		return res, nil
	},
}

func screenNames() []string {
	names := make([]string, 0, len(listers))
	for name := range listers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "list <screen>",
		Short:     "Print a screen's filtered list",
		Long:      "Print a screen's filtered list. Screens: " + strings.Join(screenNames(), ", "),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: screenNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			status, _ := cmd.Flags().GetString("status")
			role, _ := cmd.Flags().GetString("role")
			asJSON, _ := cmd.Flags().GetBool("json")

			filter := model.ListFilter{Search: search, Status: status, Role: role}
			return runList(cmd.Context(), cmd.OutOrStdout(), args[0], filter, asJSON)
		},
	}
	cmd.Flags().String("search", "", "Case-insensitive search term")
	cmd.Flags().String("status", "", "Status filter (appointments, invoices)")
	cmd.Flags().String("role", "", "Role filter (staff)")
	cmd.Flags().Bool("json", false, "Print JSON instead of a table")
	return cmd
}

func runList(ctx context.Context, out io.Writer, screen string, filter model.ListFilter, asJSON bool) error {
	list, ok := listers[screen]
	if !ok {
		return fmt.Errorf("unknown screen %q (want one of %s)", screen, strings.Join(screenNames(), ", "))
	}
	if ctx == nil {
		ctx = context.Background()
	}

	svcs := newServices(memory.Seed(), logger.Nop(), nil)
	table := out
	if asJSON {
		table = io.Discard
	}
	w := tabwriter.NewWriter(table, 0, 0, 2, ' ', 0)
	value, err := list(ctx, svcs, filter, w)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	}
	return w.Flush()
}
