package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emreozcan/pymetheus/internal/sqlite"
	"github.com/emreozcan/pymetheus/pkg/schema"
	"github.com/emreozcan/pymetheus/pkg/types"
)

func newItemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item"},
		Short:   "Manage items",
	}
	cmd.AddCommand(newItemsListCmd())
	cmd.AddCommand(newItemsNewCmd())
	cmd.AddCommand(newItemsShowCmd())
	cmd.AddCommand(newItemsDuplicateCmd())
	cmd.AddCommand(newItemsDeleteCmd())
	cmd.AddCommand(newItemsSetCmd())
	cmd.AddCommand(newItemsClearCmd())
	cmd.AddCommand(newItemsCollectionsCmd())
	return cmd
}

func newItemsListCmd() *cobra.Command {
	var (
		collectionID int64
		search       string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items, optionally restricted to a collection or a search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := openLibrary()
			if err != nil {
				return err
			}
			defer lib.Close()

			var scope *int64
			if cmd.Flags().Changed("collection") {
				scope = &collectionID
			}
			items, err := lib.ListItems(scope)
			if err != nil {
				return err
			}

			query := strings.ToLower(search)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tTITLE\tCREATOR")
			for _, item := range items {
				if query != "" && !item.Matches(query, true) {
					continue
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
					item.ID, typeLabel(item), item.Title(), mainCreatorLabel(item))
			}
			return w.Flush()
		},
	}
	cmd.Flags().Int64Var(&collectionID, "collection", 0, "restrict to a collection id")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive substring filter")
	return cmd
}

func newItemsNewCmd() *cobra.Command {
	var typeCode string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an empty item of the given type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			itemType, err := schema.TypeByName(typeCode)
			if err != nil {
				return err
			}

			lib, err := openLibrary()
			if err != nil {
				return err
			}
			defer lib.Close()

			item, err := lib.CreateItem(itemType)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created item %d (%s)\n", item.ID, typeLabel(item))
			return nil
		},
	}
	cmd.Flags().StringVar(&typeCode, "type", "", "item type code (e.g. book, journalArticle)")
	cmd.MarkFlagRequired("type")
	return cmd
}

func newItemsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show an item's fields and creators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			lib, err := openLibrary()
			if err != nil {
				return err
			}
			defer lib.Close()

			item, err := lib.GetItem(id)
			if err != nil {
				return err
			}
			return printItem(cmd, lib, item)
		},
	}
}

// printItem renders one item the way the detail panel lays it out: the
// type, then the schema fields that hold values, then creators in schema
// order, then collection memberships.
func printItem(cmd *cobra.Command, lib *sqlite.Library, item *types.Item) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Item Type\t%s\n", typeLabel(item))

	for _, field := range item.Type.Fields() {
		value, ok := item.FieldData[field]
		if !ok || value == "" {
			continue
		}
		label, err := schema.FieldDisplayName(field)
		if err != nil {
			label = field
		}
		fmt.Fprintf(w, "%s\t%s\n", label, value)
	}

	for _, ctype := range item.Type.CreatorTypes() {
		label, err := schema.CreatorTypeDisplayName(ctype)
		if err != nil {
			label = ctype
		}
		for _, nd := range item.Creators[ctype] {
			fmt.Fprintf(w, "%s\t%s\n", label, nd.Render())
		}
	}

	memberships, err := lib.ItemCollections(item.ID)
	if err != nil {
		return err
	}
	if len(memberships) > 0 {
		ids := make([]string, len(memberships))
		for i, id := range memberships {
			ids[i] = fmt.Sprintf("%d", id)
		}
		fmt.Fprintf(w, "Collections\t%s\n", strings.Join(ids, ", "))
	}
	return w.Flush()
}

func newItemsDuplicateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate ID",
		Short: "Copy an item into a new record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			lib, err := openLibrary()
			if err != nil {
				return err
			}
			defer lib.Close()

			dup, err := lib.DuplicateItem(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created item %d (copy of %d)\n", dup.ID, id)
			return nil
		},
	}
}

func newItemsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an item and its collection memberships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			lib, err := openLibrary()
			if err != nil {
				return err
			}
			defer lib.Close()

			return lib.DeleteItem(id)
		},
	}
}

func newItemsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set ID FIELD VALUE",
		Short: "Set a field value on an item",
		Long: "Set a field value on an item. Date fields must be real calendar\n" +
			"dates in YYYY-MM-DD form.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			field, value := args[1], args[2]
			if schema.IsDateField(field) {
				if err := types.ValidateDate(value); err != nil {
					return err
				}
			}

			lib, err := openLibrary()
			if err != nil {
				return err
			}
			defer lib.Close()

			item, err := lib.GetItem(id)
			if err != nil {
				return err
			}
			item.SetField(field, value)
			return lib.SaveItem(item)
		},
	}
}

func newItemsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear ID FIELD",
		Short: "Remove a field value from an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			lib, err := openLibrary()
			if err != nil {
				return err
			}
			defer lib.Close()

			item, err := lib.GetItem(id)
			if err != nil {
				return err
			}
			if err := item.ClearField(args[1]); err != nil {
				return err
			}
			return lib.SaveItem(item)
		},
	}
}

func newItemsCollectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collections ID [COLLECTION_ID...]",
		Short: "Replace an item's collection memberships",
		Long: "Replace an item's collection memberships with exactly the given\n" +
			"collection ids. No ids removes the item from every collection.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var collectionIDs []int64
			for _, arg := range args[1:] {
				cid, err := parseID(arg)
				if err != nil {
					return err
				}
				collectionIDs = append(collectionIDs, cid)
			}

			lib, err := openLibrary()
			if err != nil {
				return err
			}
			defer lib.Close()

			return lib.SetItemCollections(id, collectionIDs)
		},
	}
}

func typeLabel(item *types.Item) string {
	label, err := schema.TypeDisplayName(item.Type.Name())
	if err != nil {
		return item.Type.Name()
	}
	return label
}

func mainCreatorLabel(item *types.Item) string {
	if nd := item.MainCreator(); nd != nil {
		return nd.Render()
	}
	return ""
}
