package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skywatch/neodb/model"
)

func newInspectCmd(root *rootOptions) *cobra.Command {
	var (
		pdes string
		name string
	)

	cmd := &cobra.Command{
		Use:   "inspect (--pdes DESIGNATION | --name NAME)",
		Short: "Look up a single NEO by primary designation or by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (pdes == "") == (name == "") {
				return fmt.Errorf("exactly one of --pdes or --name is required")
			}

			db, err := root.openDatabase(cmd)
			if err != nil {
				return err
			}

			var (
				neo *model.NearEarthObject
				ok  bool
			)
			if pdes != "" {
				neo, ok = db.NEOByDesignation(pdes)
			} else {
				neo, ok = db.NEOByName(name)
			}
			if !ok {
				return fmt.Errorf("no matching NEO found")
			}

			fmt.Fprintln(cmd.OutOrStdout(), neo)
			if root.verbose {
				for _, ca := range neo.Approaches() {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", ca)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pdes, "pdes", "", "primary designation of the NEO")
	cmd.Flags().StringVar(&name, "name", "", "IAU name of the NEO")

	return cmd
}
