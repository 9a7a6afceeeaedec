package commands

import (
	"github.com/arthur-debert/userenv/pkg/errors"
	"github.com/arthur-debert/userenv/pkg/output"
	"github.com/spf13/cobra"
)

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "set VAR VALUE",
		Short:   MsgSetShort,
		GroupID: "variables",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, value := args[0], args[1]
			if err := a.client.Set(name, value); err != nil {
				return err
			}
			return a.renderer.RenderResult(output.SetResult(name, value))
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "get VAR",
		Short:   MsgGetShort,
		GroupID: "variables",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			value, ok, err := a.client.Get(name)
			if err != nil {
				return err
			}
			if !ok {
				return errors.Newf(errors.ErrNotFound, MsgErrNotFound, name).WithDetail("name", name)
			}
			return a.renderer.RenderResult(output.GetResult(name, value))
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove VAR",
		Short:   MsgRemoveShort,
		GroupID: "variables",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := a.client.Remove(name); err != nil {
				return err
			}
			return a.renderer.RenderResult(output.RemoveResult(name))
		},
	}
}

func newExistsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "exists VAR VALUE",
		Short:   MsgExistsShort,
		Long:    MsgListLong,
		GroupID: "lists",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, value := args[0], args[1]
			exists, err := a.client.ExistsInList(name, value)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(output.ExistsResult(name, value, exists))
		},
	}
}

func newAppendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "append VAR VALUE",
		Short:   MsgAppendShort,
		Long:    MsgListLong,
		GroupID: "lists",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, value := args[0], args[1]
			if err := a.client.Append(name, value); err != nil {
				return err
			}
			return a.renderer.RenderResult(output.AppendResult(name, value))
		},
	}
}

func newPrependCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "prepend VAR VALUE",
		Short:   MsgPrependShort,
		Long:    MsgListLong,
		GroupID: "lists",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, value := args[0], args[1]
			if err := a.client.Prepend(name, value); err != nil {
				return err
			}
			return a.renderer.RenderResult(output.PrependResult(name, value))
		},
	}
}

func newRemoveFromListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove-from-list VAR VALUE",
		Short:   MsgRemoveFromListShort,
		Long:    MsgListLong,
		GroupID: "lists",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, value := args[0], args[1]
			removed, err := a.client.RemoveFromList(name, value)
			if err != nil {
				return err
			}
			return a.renderer.RenderResult(output.RemoveFromListResult(name, value, removed))
		},
	}
}
