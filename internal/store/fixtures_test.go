package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// DefaultCampaignParams returns sensible defaults for campaign creation.
func DefaultCampaignParams() CampaignParams {
	return CampaignParams{
		OwnerID:      1001,
		MainChatID:   "-1001234567890",
		MainName:     "Main Channel",
		MainUsername: StringPtr("main_channel"),
		MainJoinLink: "https://t.me/+joinrequest",
	}
}

func (f *Fixtures) CreateCampaign(opts ...func(*CampaignParams)) Campaign {
	f.t.Helper()
	p := DefaultCampaignParams()
	for _, fn := range opts {
		fn(&p)
	}

	id, err := f.testDB.Store.CreateCampaign(f.ctx, p)
	require.NoError(f.t, err, "failed to create test campaign")
	campaign, err := f.testDB.Store.GetCampaign(f.ctx, id)
	require.NoError(f.t, err, "failed to load test campaign")
	return campaign
}

func (f *Fixtures) CreateChannel(ownerID int64, chatID, name string) int64 {
	f.t.Helper()
	id, err := f.testDB.Store.InsertChannel(f.ctx, InsertChannelParams{
		OwnerID:    ownerID,
		ChatID:     chatID,
		Name:       name,
		InviteLink: "https://t.me/+" + name,
	})
	require.NoError(f.t, err, "failed to create test channel")
	return id
}

func (f *Fixtures) CreateLink(ownerID int64, name, url string) int64 {
	f.t.Helper()
	id, err := f.testDB.Store.InsertLink(f.ctx, ownerID, name, url)
	require.NoError(f.t, err, "failed to create test link")
	return id
}
