package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"subgate/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errUnknownFormat = errors.New("unknown output format")

// campaignReader is the subset of the store the inspection commands use.
type campaignReader interface {
	GetCampaign(ctx context.Context, id int64) (store.Campaign, error)
	ListCampaignsByOwner(ctx context.Context, ownerID int64) ([]store.CampaignSummary, error)
	GetCampaignItems(ctx context.Context, campaignID int64) ([]store.ResolvedItem, error)
}

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Inspect saved campaigns",
}

var campaignsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the campaigns of one owner, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerID := viper.GetInt64("owner")
		if ownerID == 0 {
			return errors.New("--owner is required")
		}

		ctx := cmd.Context()
		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		return listCampaigns(ctx, &st, cmd.OutOrStdout(), ownerID, viper.GetString("output"))
	},
}

var campaignsShowCmd = &cobra.Command{
	Use:   "show <campaign-id>",
	Short: "Show one campaign with its checklist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid campaign id %q: %w", args[0], err)
		}

		ctx := cmd.Context()
		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		return showCampaign(ctx, &st, cmd.OutOrStdout(), id, viper.GetString("output"))
	},
}

func listCampaigns(ctx context.Context, r campaignReader, w io.Writer, ownerID int64, format string) error {
	campaigns, err := r.ListCampaignsByOwner(ctx, ownerID)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		if campaigns == nil {
			campaigns = []store.CampaignSummary{}
		}
		return writeJSON(w, campaigns)
	case "text":
		if len(campaigns) == 0 {
			_, err := fmt.Fprintf(w, "owner %d has no campaigns\n", ownerID)
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tMAIN\tCHAT\tCREATED")
		for _, c := range campaigns {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.Title(), c.MainChatID, c.CreatedAt.Format("2006-01-02 15:04"))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("%w: %s", errUnknownFormat, format)
	}
}

type campaignView struct {
	store.Campaign
	Items []itemView `json:"items"`
}

type itemView struct {
	Position int            `json:"position"`
	Type     store.ItemType `json:"type"`
	RefID    int64          `json:"ref_id"`
	Title    string         `json:"title"`
}

func showCampaign(ctx context.Context, r campaignReader, w io.Writer, id int64, format string) error {
	campaign, err := r.GetCampaign(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("campaign %d not found", id)
		}
		return err
	}
	items, err := r.GetCampaignItems(ctx, id)
	if err != nil {
		return err
	}

	view := campaignView{Campaign: campaign, Items: make([]itemView, 0, len(items))}
	for _, it := range items {
		view.Items = append(view.Items, itemView{
			Position: it.Position,
			Type:     it.Item.Type(),
			RefID:    it.RefID,
			Title:    it.Item.Title(),
		})
	}

	switch format {
	case "json":
		return writeJSON(w, view)
	case "text":
		fmt.Fprintf(w, "Campaign %d (owner %d)\n", campaign.ID, campaign.OwnerID)
		fmt.Fprintf(w, "Main: %s [%s]\n", campaign.Title(), campaign.MainChatID)
		fmt.Fprintf(w, "Join link: %s\n", campaign.MainJoinLink)
		for _, it := range view.Items {
			fmt.Fprintf(w, "%d. %s %s\n", it.Position, it.Type, it.Title)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", errUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	campaignsCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text or json")
	viper.BindPFlag("output", campaignsCmd.PersistentFlags().Lookup("output"))

	campaignsListCmd.Flags().Int64("owner", 0, "Owner user id")
	viper.BindPFlag("owner", campaignsListCmd.Flags().Lookup("owner"))

	campaignsCmd.AddCommand(campaignsListCmd, campaignsShowCmd)
	rootCmd.AddCommand(campaignsCmd)
}
