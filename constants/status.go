package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RoleUser     = 0
	RoleAdmin    = 1
	RoleOwner    = 2
	RoleOrderSvc = 3
)

// Revenue event status
const (
	EventStatusPending   = 0
	EventStatusProcessed = 1
	EventStatusFailed    = 2
	EventStatusDisputed  = 3
)

// Collection access tier
const (
	TierOwner        = "owner"
	TierEditor       = "editor"
	TierCollaborator = "collaborator"
	TierViewer       = "viewer"
)

// Split model
const (
	SplitModelOwnerOnly         = "owner_only"
	SplitModelEqualSplit        = "equal_split"
	SplitModelContributionBased = "contribution_based"
	SplitModelCustom            = "custom"
)

// Share type
const (
	ShareTypePercentage  = "percentage"
	ShareTypeFixedAmount = "fixed_amount"
)

// Split tags
const (
	SplitTagOwner            = "owner"
	SplitTagCollaboratorItem = "collaborator_item"
	SplitTagIndividual       = "individual"
	SplitTagStandaloneWallet = "standalone_wallet"
	SplitTagFixedAmount      = "fixed_amount"
)

// Item type
const (
	ItemTypeProduct  = "product"
	ItemTypeCategory = "category"
)
