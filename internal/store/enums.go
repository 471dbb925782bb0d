package store

// ItemType tags a campaign item row with the table its ref_id points into.
type ItemType string

// Campaign item ENUMs
const (
	ItemTypeChannel ItemType = "channel"
	ItemTypeLink    ItemType = "link"
)

func (t ItemType) Valid() bool {
	return t == ItemTypeChannel || t == ItemTypeLink
}
