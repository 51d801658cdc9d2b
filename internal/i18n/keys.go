package i18n

// Key identifies one user-facing string.
type Key string

// Common
const (
	Loading   Key = "loading"
	Cancel    Key = "cancel"
	Save      Key = "save"
	Edit      Key = "edit"
	Delete    Key = "delete"
	Create    Key = "create"
	Confirm   Key = "confirm"
	Back      Key = "back"
	Copied    Key = "copied"
	Yes       Key = "yes"
	No        Key = "no"
	Quit      Key = "quit"
	Refresh   Key = "refresh"
	Updated   Key = "updated"
	Anonymous Key = "anonymous"
	Language  Key = "language"
	Theme     Key = "theme"
)

// Navigation
const (
	Home        Key = "home"
	MyWishlists Key = "myWishlists"
	Login       Key = "login"
	Logout      Key = "logout"
	Register    Key = "register"
	SignedInAs  Key = "signedInAs"
	LoggedOut   Key = "loggedOut"
)

// Home
const (
	HomeTitle             Key = "homeTitle"
	HomeSubtitle          Key = "homeSubtitle"
	CreateWishlistButton  Key = "createWishlistButton"
	OpenLinkPrompt        Key = "openLinkPrompt"
	OpenLinkPlaceholder   Key = "openLinkPlaceholder"
	InvalidLink           Key = "invalidLink"
	EasyToCreateTitle     Key = "easyToCreateTitle"
	EasyToCreateDesc      Key = "easyToCreateDesc"
	ShareWithFriendsTitle Key = "shareWithFriendsTitle"
	ShareWithFriendsDesc  Key = "shareWithFriendsDesc"
	TrackPurchasesTitle   Key = "trackPurchasesTitle"
	TrackPurchasesDesc    Key = "trackPurchasesDesc"
	FooterText            Key = "footerText"
)

// Create wishlist
const (
	CreateWishlistTitle        Key = "createWishlistTitle"
	CreateWishlistSubtitle     Key = "createWishlistSubtitle"
	WishlistTitle              Key = "wishlistTitle"
	WishlistTitlePlaceholder   Key = "wishlistTitlePlaceholder"
	YourName                   Key = "yourName"
	YourNamePlaceholder        Key = "yourNamePlaceholder"
	BirthdayDate               Key = "birthdayDate"
	Description                Key = "description"
	DescriptionPlaceholder     Key = "descriptionPlaceholder"
	AllowAnonymousPurchase     Key = "allowAnonymousPurchase"
	AllowAnonymousPurchaseHelp Key = "allowAnonymousPurchaseHelp"
	CreateWishlistSubmit       Key = "createWishlistSubmit"
	Creating                   Key = "creating"
	CreateWishlistNote         Key = "createWishlistNote"
)

// Wishlist view
const (
	AddItem        Key = "addItem"
	CopyShareLink  Key = "copyShareLink"
	CopyLink       Key = "copyLink"
	OwnerNotice    Key = "ownerNotice"
	NoItemsYet     Key = "noItemsYet"
	NoItemsOwner   Key = "noItemsOwner"
	NoItemsVisitor Key = "noItemsVisitor"
	AddFirstItem   Key = "addFirstItem"
	ByOwner        Key = "byOwner"
	ItemCounts     Key = "itemCounts"
	ProfileTitle   Key = "profileTitle"
	ProfileHint    Key = "profileHint"
	ShareLinkLabel Key = "shareLinkLabel"
)

// Items
const (
	ViewProduct       Key = "viewProduct"
	MarkAsPurchased   Key = "markAsPurchased"
	UnmarkAsPurchased Key = "unmarkAsPurchased"
	PurchasedBy       Key = "purchasedBy"
	ReservedBy        Key = "reservedBy"
	ReserveItem       Key = "reserveItem"
	UnreserveItem     Key = "unreserveItem"
	YourNameInput     Key = "yourNameInput"
	NameOptional      Key = "nameOptional"
	ConfirmPurchase   Key = "confirmPurchase"
	ConfirmReserve    Key = "confirmReserve"
	StateAvailable    Key = "stateAvailable"
	StateReserved     Key = "stateReserved"
	StatePurchased    Key = "statePurchased"
	StateOpen         Key = "stateOpen"
	StateFunded       Key = "stateFunded"
	PooledGift        Key = "pooledGift"
	Raised            Key = "raised"
	Goal              Key = "goal"
	Remaining         Key = "remaining"
	Contributions     Key = "contributions"
	NoContributions   Key = "noContributions"
)

// Item form
const (
	AddNewItem           Key = "addNewItem"
	EditItem             Key = "editItem"
	ItemTitle            Key = "itemTitle"
	ItemDescription      Key = "itemDescription"
	ImageURL             Key = "imageUrl"
	ImageURLOptional     Key = "imageUrlOptional"
	ProductURL           Key = "productUrl"
	ItemType             Key = "itemType"
	TypeStandard         Key = "typeStandard"
	TypePooled           Key = "typePooled"
	TargetAmount         Key = "targetAmount"
	AddItemButton        Key = "addItemButton"
	UpdateItemButton     Key = "updateItemButton"
	Autofill             Key = "autofill"
	Autofilling          Key = "autofilling"
	Autofilled           Key = "autofilled"
	MetadataNeedsURL     Key = "metadataNeedsUrl"
	MetadataFailed       Key = "metadataFailed"
	MetadataBlocked      Key = "metadataBlocked"
	DeleteItemConfirm    Key = "deleteItemConfirm"
	ItemAdded            Key = "itemAdded"
	ItemUpdated          Key = "itemUpdated"
	ItemDeleted          Key = "itemDeleted"
	PurchaseRecorded     Key = "purchaseRecorded"
	PurchaseCleared      Key = "purchaseCleared"
	ReservationRecorded  Key = "reservationRecorded"
	ReservationCleared   Key = "reservationCleared"
	ContributionRecorded Key = "contributionRecorded"
)

// Contribution
const (
	ContributeTitle   Key = "contributeTitle"
	ContributorName   Key = "contributorName"
	Amount            Key = "amount"
	Message           Key = "message"
	MessageOptional   Key = "messageOptional"
	QuickAmounts      Key = "quickAmounts"
	ContributeButton  Key = "contributeButton"
	Contributing      Key = "contributing"
	AmountExceeds     Key = "amountExceeds"
	AmountInvalid     Key = "amountInvalid"
	NameRequired      Key = "nameRequired"
	ContributionEnded Key = "contributionEnded"
)

// Login and register
const (
	LoginTitle       Key = "loginTitle"
	LoginSubtitle    Key = "loginSubtitle"
	Email            Key = "email"
	Password         Key = "password"
	LoginButton      Key = "loginButton"
	LoggingIn        Key = "loggingIn"
	NoAccount        Key = "noAccount"
	RegisterTitle    Key = "registerTitle"
	RegisterSubtitle Key = "registerSubtitle"
	Name             Key = "name"
	RegisterButton   Key = "registerButton"
	Registering      Key = "registering"
	HaveAccount      Key = "haveAccount"
)

// My wishlists
const (
	MyWishlistsTitle    Key = "myWishlistsTitle"
	MyWishlistsSubtitle Key = "myWishlistsSubtitle"
	NoWishlistsYet      Key = "noWishlistsYet"
	CreateFirstWishlist Key = "createFirstWishlist"
	Items               Key = "items"
	ViewWishlist        Key = "viewWishlist"
	DeleteWishlist      Key = "deleteWishlist"
	DeleteConfirm       Key = "deleteConfirm"
	WishlistDeleted     Key = "wishlistDeleted"
	LoginRequired       Key = "loginRequired"
)

// Validation. The values match the wishlist package's message keys.
const (
	Required         Key = "required"
	InvalidURL       Key = "invalidUrl"
	InvalidEmail     Key = "invalidEmail"
	InvalidDate      Key = "invalidDate"
	PasswordTooShort Key = "passwordTooShort"
	AmountPositive   Key = "amountPositive"
	InvalidValue     Key = "invalidValue"
)

// Errors
const (
	ErrorLoadingWishlist  Key = "errorLoadingWishlist"
	ErrorCreatingWishlist Key = "errorCreatingWishlist"
	ErrorDeletingWishlist Key = "errorDeletingWishlist"
	ErrorLoadingLists     Key = "errorLoadingLists"
	ErrorAddingItem       Key = "errorAddingItem"
	ErrorUpdatingItem     Key = "errorUpdatingItem"
	ErrorDeletingItem     Key = "errorDeletingItem"
	ErrorPurchase         Key = "errorPurchase"
	ErrorReserve          Key = "errorReserve"
	ErrorContribute       Key = "errorContribute"
	ErrorLogin            Key = "errorLogin"
	ErrorRegister         Key = "errorRegister"
	ErrorGeneric          Key = "errorGeneric"
	ErrorCopy             Key = "errorCopy"
	WishlistNotFound      Key = "wishlistNotFound"
	Offline               Key = "offline"
	RefreshWarning        Key = "refreshWarning"
	NotAllowed            Key = "notAllowed"
)

// Ads, help and diagnostics
const (
	AdLabel       Key = "adLabel"
	AdPlaceholder Key = "adPlaceholder"
	HelpTitle     Key = "helpTitle"
	LogsTitle     Key = "logsTitle"
	LogsEmpty     Key = "logsEmpty"
)

// Key help, help sections and log view labels
const (
	HelpToggle       Key = "helpToggle"
	HelpCycleTheme   Key = "helpCycleTheme"
	HelpLanguage     Key = "helpLanguage"
	HelpHome         Key = "helpHome"
	HelpNewWishlist  Key = "helpNewWishlist"
	HelpOpenLink     Key = "helpOpenLink"
	HelpClientLog    Key = "helpClientLog"
	HelpMoveUp       Key = "helpMoveUp"
	HelpMoveDown     Key = "helpMoveDown"
	HelpTop          Key = "helpTop"
	HelpBottom       Key = "helpBottom"
	HelpHalfPageUp   Key = "helpHalfPageUp"
	HelpHalfPageDown Key = "helpHalfPageDown"
	HelpReserve      Key = "helpReserve"
	HelpPurchase     Key = "helpPurchase"
	HelpContribute   Key = "helpContribute"
	HelpCopyLink     Key = "helpCopyLink"
	HelpAddItem      Key = "helpAddItem"
	HelpNextField    Key = "helpNextField"
	HelpPrevField    Key = "helpPrevField"
	HelpToggleField  Key = "helpToggleField"
	HelpAutofill     Key = "helpAutofill"
	HelpQuickAmount  Key = "helpQuickAmount"
	HelpSearchLog    Key = "helpSearchLog"
	HelpFollow       Key = "helpFollow"
	HelpLevel        Key = "helpLevel"
	SectionGeneral   Key = "sectionGeneral"
	SectionMovement  Key = "sectionMovement"
	SectionWishlist  Key = "sectionWishlist"
	SectionOwner     Key = "sectionOwner"
	SectionForms     Key = "sectionForms"
	SectionLogs      Key = "sectionLogs"
	SectionAccount   Key = "sectionAccount"
	LogSearch        Key = "logSearch"
	LogFollow        Key = "logFollow"
	LogLevel         Key = "logLevel"
	LogAllLevels     Key = "logAllLevels"
)
