package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"meraki_estimator/internal/adapter/http/dto/response"
	"meraki_estimator/internal/domain/pricing"
	"meraki_estimator/internal/domain/totals"
	"meraki_estimator/internal/usecase"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

type engineOpener func(ctx context.Context, profile string) (usecase.IEstimateUseCase, func() error, error)

var (
	errUnknownProfile  = errors.New("invalid profile id")
	errEstimateMissing = errors.New("estimate not found")
	errNoStore         = errors.New("estimate store unavailable")
)

// snapshot is the debugging view of one profile's storage.
type snapshot struct {
	Profile         string                      `json:"profile"`
	ActiveID        string                      `json:"active_id"`
	ActiveFinalized bool                        `json:"active_finalized"`
	Estimates       []response.EstimateResponse `json:"estimates"`
}

func newApp(out io.Writer, open engineOpener) *cli.App {
	// withEngine opens the profile's engine around one command.
	withEngine := func(run func(c *cli.Context, uc usecase.IEstimateUseCase) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			profile := strings.TrimSpace(c.String("profile"))
			if !usecase.ValidProfileID(profile) {
				return errors.Wrapf(errUnknownProfile, "%q", profile)
			}
			uc, closeFn, err := open(c.Context, profile)
			if err != nil {
				return errors.Wrap(err, "open store")
			}
			defer func() {
				if err := closeFn(); err != nil {
					logrus.WithError(err).WithField("profile", profile).Warn("Failed to close the estimate store")
				}
			}()
			return run(c, uc)
		}
	}

	return &cli.App{
		Name:      "estimatectl",
		Usage:     "manage renovation estimates from the command line",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Value:   usecase.DefaultProfileID,
				Usage:   "profile namespace to operate on",
				EnvVars: []string{"ESTIMATOR_PROFILE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list estimates, most recently updated first",
				Action: withEngine(func(c *cli.Context, uc usecase.IEstimateUseCase) error {
					active, _ := uc.GetActiveEstimateID(c.Context)
					tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "\tID\tTITLE\tSTATUS\tTOTAL\tUPDATED")
					for _, m := range uc.ListEstimates(c.Context) {
						marker := ""
						if m.ID == active {
							marker = "*"
						}
						fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", marker, m.ID, m.Title, m.Status, m.Total, m.UpdatedAt.Format(time.RFC3339))
					}
					return tw.Flush()
				}),
			},
			{
				Name:      "new",
				Usage:     "create an estimate and make it active",
				ArgsUsage: "[title]",
				Action: withEngine(func(c *cli.Context, uc usecase.IEstimateUseCase) error {
					meta := uc.CreateEstimate(c.Context, strings.Join(c.Args().Slice(), " "))
					if meta.ID == "" {
						return errNoStore
					}
					fmt.Fprintf(out, "%s\t%s\n", meta.ID, meta.Title)
					return nil
				}),
			},
			{
				Name:      "use",
				Usage:     "switch the active estimate",
				ArgsUsage: "<id>",
				Action: withEngine(func(c *cli.Context, uc usecase.IEstimateUseCase) error {
					id := c.Args().First()
					if !uc.SetActiveEstimateID(c.Context, id) {
						return errors.Wrapf(errEstimateMissing, "%q", id)
					}
					fmt.Fprintln(out, id)
					return nil
				}),
			},
			{
				Name:      "rename",
				Usage:     "rename a draft estimate",
				ArgsUsage: "<id> <title>",
				Action: withEngine(func(c *cli.Context, uc usecase.IEstimateUseCase) error {
					id := c.Args().First()
					title := strings.Join(c.Args().Tail(), " ")
					if !uc.SetEstimateTitle(c.Context, id, title) {
						return errors.Errorf("cannot rename %q: unknown, finalized or blank title", id)
					}
					return nil
				}),
			},
			{
				Name:      "duplicate",
				Usage:     "copy an estimate into a new active draft",
				ArgsUsage: "<id>",
				Action: withEngine(func(c *cli.Context, uc usecase.IEstimateUseCase) error {
					meta, ok := uc.DuplicateEstimate(c.Context, c.Args().First())
					if !ok {
						return errors.Wrapf(errEstimateMissing, "%q", c.Args().First())
					}
					fmt.Fprintf(out, "%s\t%s\n", meta.ID, meta.Title)
					return nil
				}),
			},
			{
				Name:  "finalize",
				Usage: "finalize the active estimate",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "total", Usage: "display total to freeze, computed from the draft when empty"},
				},
				Action: withEngine(func(c *cli.Context, uc usecase.IEstimateUseCase) error {
					meta, changed := uc.FinalizeActiveEstimate(c.Context, c.String("total"))
					if meta.ID == "" {
						return errNoStore
					}
					if !changed {
						fmt.Fprintf(out, "%s already finalized (%s)\n", meta.ID, meta.Total)
						return nil
					}
					fmt.Fprintf(out, "%s finalized at %s\n", meta.ID, meta.Total)
					return nil
				}),
			},
			{
				Name:  "totals",
				Usage: "print the itemized totals of the active estimate",
				Action: withEngine(func(c *cli.Context, uc usecase.IEstimateUseCase) error {
					return printSummary(out, uc.Summary(c.Context))
				}),
			},
			{
				Name:      "delete",
				Usage:     "delete an estimate",
				ArgsUsage: "<id>",
				Action: withEngine(func(c *cli.Context, uc usecase.IEstimateUseCase) error {
					if !uc.DeleteEstimate(c.Context, c.Args().First()) {
						return errors.Wrapf(errEstimateMissing, "%q", c.Args().First())
					}
					return nil
				}),
			},
			{
				Name:      "export",
				Usage:     "print an estimate with its draft and summary as JSON",
				ArgsUsage: "[id]",
				Action: withEngine(func(c *cli.Context, uc usecase.IEstimateUseCase) error {
					id := c.Args().First()
					if id == "" {
						id = uc.EnsureActiveEstimateID(c.Context)
					}
					meta, ok := uc.GetEstimate(c.Context, id)
					if !ok {
						return errors.Wrapf(errEstimateMissing, "%q", id)
					}
					d, _ := uc.GetEstimateDraft(c.Context, id)
					summary := totals.Itemize(d)
					return writeJSON(out, response.ExportResponse{
						ExportedAt: time.Now().UTC(),
						Estimate:   response.FromEstimateMeta(meta, ""),
						Draft:      response.FromDraft(meta.ID, meta.IsFinalized(), d),
						Summary:    response.FromSummary(meta.ID, &summary),
					})
				}),
			},
			{
				Name:  "snapshot",
				Usage: "dump the active pointer and estimate index of the profile",
				Action: withEngine(func(c *cli.Context, uc usecase.IEstimateUseCase) error {
					active, _ := uc.GetActiveEstimateID(c.Context)
					return writeJSON(out, snapshot{
						Profile:         c.String("profile"),
						ActiveID:        active,
						ActiveFinalized: uc.IsActiveEstimateFinalized(c.Context),
						Estimates:       response.FromEstimateMetas(uc.ListEstimates(c.Context), active),
					})
				}),
			},
		},
	}
}

func printSummary(out io.Writer, s *totals.Summary) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, a := range s.Areas {
		fmt.Fprintf(tw, "%s\t%d rooms\t%s m²\t%s\t\n", a.Label, len(a.Rooms), humanize.Ftoa(a.M2), pricing.FormatEuro(a.Total))
	}
	fmt.Fprintf(tw, "base\t\t\t%s\t\n", pricing.FormatEuro(s.Totals.Base))
	fmt.Fprintf(tw, "optionals\t\t\t%s\t\n", pricing.FormatEuro(s.Totals.Optionals))
	fmt.Fprintf(tw, "total\t\t\t%s\t\n", pricing.FormatEuro(s.Totals.Total))
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, alert := range s.Alerts {
		fmt.Fprintf(out, "! %s\n", alert)
	}
	return nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
