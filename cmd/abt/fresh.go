package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vito/abt/pkg/abt"
	"github.com/vito/abt/pkg/ioctx"
	"github.com/vito/abt/pkg/scenario"
)

func freshCmd(cfg *Config) *cobra.Command {
	var used []string

	cmd := &cobra.Command{
		Use:   "fresh NAME",
		Short: "Print the name the freshening strategy picks for NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := (&scenario.Document{}).Engine(cfg.Freshen)
			if err != nil {
				return err
			}

			// the name bound by lam(NAME.NAME) when printed under the given context
			node, err := abt.Oper("lam", abt.Bind(args, abt.Var(args[0])))
			if err != nil {
				return err
			}
			binders, err := engine.Args(abt.NewNames(used...), node)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(ioctx.StdoutFromContext(cmd.Context()), binders[0].Bound()[0])
			return err
		},
	}

	cmd.Flags().StringSliceVar(&used, "used", nil, "Names already in use")
	return cmd
}
