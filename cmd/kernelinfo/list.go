package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-strided/array"
	"github.com/cwbudde/algo-strided/kernel"
)

func (a *app) newListCmd() *cobra.Command {
	var family, typ string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list every kernel with the implementation serving it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := filterIdentities(family, typ)
			if err != nil {
				return err
			}
			return a.printList(ids)
		},
	}

	f := cmd.Flags()
	f.StringVar(&family, "family", "", "only list scalar or unary kernels")
	f.StringVar(&typ, "type", "", "only list float or double kernels")
	return cmd
}

func filterIdentities(family, typ string) ([]kernel.Identity, error) {
	var (
		wantFamily = -1
		wantType   = -1
	)
	switch family {
	case "":
	case "scalar":
		wantFamily = int(kernel.ScalarFamily)
	case "unary":
		wantFamily = int(kernel.UnaryFamily)
	default:
		return nil, fmt.Errorf("unknown family %q (want scalar or unary)", family)
	}
	if typ != "" {
		t, ok := kernel.ParseType(typ)
		if !ok {
			return nil, fmt.Errorf("unknown type %q (want float or double)", typ)
		}
		wantType = int(t)
	}

	var ids []kernel.Identity
	for _, id := range kernel.Identities() {
		if wantFamily >= 0 && int(id.Family) != wantFamily {
			continue
		}
		if wantType >= 0 && int(id.Type) != wantType {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// providerKey names the kernel family an identity is resolved under.
func providerKey(id kernel.Identity) string {
	fam := "scalar"
	if id.Family == kernel.UnaryFamily {
		fam = "unary"
	}
	if id.Mode == kernel.InPlace {
		fam += "_assign"
	}
	return fam + "/" + id.Type.String()
}

func (a *app) printList(ids []kernel.Identity) error {
	providers := array.Providers()

	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tOp\tType\tMode\tImplementation\n")
	fmt.Fprintf(tw, "------\t--\t----\t----\t--------------\n")
	for _, id := range ids {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			id.Name(), id.Op(), id.Type, id.Mode, providers[providerKey(id)])
	}
	return tw.Flush()
}

func (a *app) newImplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "impl",
		Short: "show the selected implementation per kernel family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			providers := array.Providers()
			families := make([]string, 0, len(providers))
			for fam := range providers {
				families = append(families, fam)
			}
			sort.Strings(families)

			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Selected\t%s\n\n", array.Implementation())
			fmt.Fprintf(tw, "Family\tImplementation\n")
			fmt.Fprintf(tw, "------\t--------------\n")
			for _, fam := range families {
				fmt.Fprintf(tw, "%s\t%s\n", fam, providers[fam])
			}
			return tw.Flush()
		},
	}
}
