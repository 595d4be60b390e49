package constants

// Icon names registered by the icons plugin.
const (
	IconHome   = "home"   // House outline
	IconWallet = "wallet" // Wallet outline
	IconLink   = "link"   // Chain link, used for adapter pages
	IconAlert  = "alert"  // Warning triangle
)
