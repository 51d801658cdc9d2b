package i18n

var english = map[Key]string{
	Loading:   "Loading...",
	Cancel:    "Cancel",
	Save:      "Save",
	Edit:      "Edit",
	Delete:    "Delete",
	Create:    "Create",
	Confirm:   "Confirm",
	Back:      "Back",
	Copied:    "Copied!",
	Yes:       "Yes",
	No:        "No",
	Quit:      "Quit",
	Refresh:   "Refresh",
	Updated:   "Updated %s",
	Anonymous: "Anonymous",
	Language:  "Language",
	Theme:     "Theme",

	Home:        "Home",
	MyWishlists: "My Wishlists",
	Login:       "Login",
	Logout:      "Logout",
	Register:    "Register",
	SignedInAs:  "Signed in as %s",
	LoggedOut:   "You have been logged out",

	HomeTitle:             "Cumplesito - Your Birthday Wishlist",
	HomeSubtitle:          "Create and share your perfect birthday wishlist with friends and family. The easiest way to organize your wishes and avoid duplicate gifts!",
	CreateWishlistButton:  "Create Your Wishlist",
	OpenLinkPrompt:        "Open a wishlist",
	OpenLinkPlaceholder:   "Paste a wishlist link or id",
	InvalidLink:           "That does not look like a wishlist link",
	EasyToCreateTitle:     "Easy to Create",
	EasyToCreateDesc:      "Add items with images, descriptions, and links in seconds",
	ShareWithFriendsTitle: "Share with Friends",
	ShareWithFriendsDesc:  "Get a unique link to share with your friends and family",
	TrackPurchasesTitle:   "Track Purchases",
	TrackPurchasesDesc:    "Friends can mark items as purchased to avoid duplicates",
	FooterText:            "Made with ❤️ for special celebrations",

	CreateWishlistTitle:        "Create Your Wishlist",
	CreateWishlistSubtitle:     "Share your birthday wishes with friends and family",
	WishlistTitle:              "Wishlist Title",
	WishlistTitlePlaceholder:   "e.g., My 30th Birthday Wishlist",
	YourName:                   "Your Name",
	YourNamePlaceholder:        "e.g., John Doe",
	BirthdayDate:               "Birthday Date (YYYY-MM-DD)",
	Description:                "Description",
	DescriptionPlaceholder:     "Tell your friends what this wishlist is about...",
	AllowAnonymousPurchase:     "Allow anonymous purchases",
	AllowAnonymousPurchaseHelp: "If enabled, people can purchase items without entering their name",
	CreateWishlistSubmit:       "Create Wishlist",
	Creating:                   "Creating...",
	CreateWishlistNote:         "After creating your wishlist, you'll be able to add items and get a shareable link to send to your friends!",

	AddItem:        "Add Item",
	CopyShareLink:  "Copy Share Link",
	CopyLink:       "Copy Link",
	OwnerNotice:    "You are the owner of this wishlist. You can add, edit, and delete items. Share the link above with your friends!",
	NoItemsYet:     "No items yet",
	NoItemsOwner:   "Start adding items to your wishlist!",
	NoItemsVisitor: "The wishlist owner hasn't added any items yet.",
	AddFirstItem:   "Add Your First Item",
	ByOwner:        "by %s",
	ItemCounts:     "%d items · %d available · %d reserved · %d purchased",
	ProfileTitle:   "About the birthday person",
	ProfileHint:    "This profile helps pick the perfect gift",
	ShareLinkLabel: "Share link",

	ViewProduct:       "View Product",
	MarkAsPurchased:   "Mark as Purchased",
	UnmarkAsPurchased: "Unmark as Purchased",
	PurchasedBy:       "Purchased by %s",
	ReservedBy:        "Reserved by %s",
	ReserveItem:       "Reserve",
	UnreserveItem:     "Release reservation",
	YourNameInput:     "Your name",
	NameOptional:      "Your name (optional)",
	ConfirmPurchase:   "Confirm Purchase",
	ConfirmReserve:    "Confirm Reservation",
	StateAvailable:    "Available",
	StateReserved:     "Reserved",
	StatePurchased:    "Purchased",
	StateOpen:         "Collecting",
	StateFunded:       "Funded",
	PooledGift:        "Group gift",
	Raised:            "Raised",
	Goal:              "Goal",
	Remaining:         "Remaining",
	Contributions:     "Contributions",
	NoContributions:   "No contributions yet",

	AddNewItem:           "Add New Item",
	EditItem:             "Edit Item",
	ItemTitle:            "Title",
	ItemDescription:      "Description",
	ImageURL:             "Image URL",
	ImageURLOptional:     "Image URL (optional - auto-detected)",
	ProductURL:           "Product URL",
	ItemType:             "Gift type",
	TypeStandard:         "Single gift",
	TypePooled:           "Group gift",
	TargetAmount:         "Goal amount",
	AddItemButton:        "Add Item",
	UpdateItemButton:     "Update Item",
	Autofill:             "Auto-fill",
	Autofilling:          "Fetching product details...",
	Autofilled:           "Details filled in from the product page",
	MetadataNeedsURL:     "Please enter a valid URL first",
	MetadataFailed:       "Could not extract information from the URL. Try entering the details manually.",
	MetadataBlocked:      "This store blocks automatic extraction. Copy the title and image address by hand.",
	DeleteItemConfirm:    "Delete \"%s\"?",
	ItemAdded:            "Item added",
	ItemUpdated:          "Item updated",
	ItemDeleted:          "Item deleted",
	PurchaseRecorded:     "Marked as purchased",
	PurchaseCleared:      "Purchase cleared",
	ReservationRecorded:  "Reserved",
	ReservationCleared:   "Reservation released",
	ContributionRecorded: "Thanks for your contribution!",

	ContributeTitle:   "Contribute",
	ContributorName:   "Your name",
	Amount:            "Amount",
	Message:           "Message",
	MessageOptional:   "Message (optional)",
	QuickAmounts:      "Quick amounts",
	ContributeButton:  "Contribute",
	Contributing:      "Sending...",
	AmountExceeds:     "The amount exceeds the remaining %s",
	AmountInvalid:     "Enter an amount such as 25 or 12.50",
	NameRequired:      "Name is required",
	ContributionEnded: "This gift is fully funded",

	LoginTitle:       "Welcome Back",
	LoginSubtitle:    "Login to manage your wishlists",
	Email:            "Email",
	Password:         "Password",
	LoginButton:      "Login",
	LoggingIn:        "Logging in...",
	NoAccount:        "Don't have an account? Press ctrl+r to create one",
	RegisterTitle:    "Create Account",
	RegisterSubtitle: "Join us to create and manage your wishlists",
	Name:             "Name",
	RegisterButton:   "Register",
	Registering:      "Creating account...",
	HaveAccount:      "Already have an account? Press ctrl+l to log in",

	MyWishlistsTitle:    "My Wishlists",
	MyWishlistsSubtitle: "View and manage all your wishlists",
	NoWishlistsYet:      "No wishlists yet",
	CreateFirstWishlist: "Create your first wishlist to get started!",
	Items:               "items",
	ViewWishlist:        "View Wishlist",
	DeleteWishlist:      "Delete Wishlist",
	DeleteConfirm:       "Are you sure you want to delete this wishlist?",
	WishlistDeleted:     "Wishlist deleted",
	LoginRequired:       "Please log in first",

	Required:         "This field is required",
	InvalidURL:       "Please enter a valid URL",
	InvalidEmail:     "Please enter a valid email",
	InvalidDate:      "Use the format YYYY-MM-DD",
	PasswordTooShort: "Password must be at least 6 characters",
	AmountPositive:   "The amount must be greater than 0",
	InvalidValue:     "Invalid value",

	ErrorLoadingWishlist:  "Failed to load wishlist",
	ErrorCreatingWishlist: "Failed to create wishlist. Please try again.",
	ErrorDeletingWishlist: "Failed to delete wishlist",
	ErrorLoadingLists:     "Failed to load your wishlists",
	ErrorAddingItem:       "Failed to add item",
	ErrorUpdatingItem:     "Failed to update item",
	ErrorDeletingItem:     "Failed to delete item",
	ErrorPurchase:         "Failed to update purchase",
	ErrorReserve:          "Failed to update reservation",
	ErrorContribute:       "Failed to record contribution",
	ErrorLogin:            "Invalid email or password",
	ErrorRegister:         "Failed to create account. Please try again.",
	ErrorGeneric:          "Something went wrong",
	ErrorCopy:             "Could not copy to the clipboard",
	WishlistNotFound:      "Wishlist not found",
	Offline:               "Server unreachable",
	RefreshWarning:        "Saved, but the list could not be reloaded",
	NotAllowed:            "That action is not available for this item right now",

	AdLabel:       "Advertisement",
	AdPlaceholder: "Ad space",
	HelpTitle:     "Keyboard shortcuts",
	LogsTitle:     "Client log",
	LogsEmpty:     "No log lines yet",

	HelpToggle:       "Toggle help",
	HelpCycleTheme:   "Cycle theme",
	HelpLanguage:     "Switch language",
	HelpHome:         "Home",
	HelpNewWishlist:  "New wishlist",
	HelpOpenLink:     "Open link",
	HelpClientLog:    "Client log",
	HelpMoveUp:       "Move up",
	HelpMoveDown:     "Move down",
	HelpTop:          "Go to top",
	HelpBottom:       "Go to bottom",
	HelpHalfPageUp:   "Half page up",
	HelpHalfPageDown: "Half page down",
	HelpReserve:      "Reserve or release",
	HelpPurchase:     "Purchase or undo",
	HelpContribute:   "Contribute",
	HelpCopyLink:     "Copy link",
	HelpAddItem:      "Add item",
	HelpNextField:    "Next field",
	HelpPrevField:    "Previous field",
	HelpToggleField:  "Toggle",
	HelpAutofill:     "Auto-fill",
	HelpQuickAmount:  "Quick amount",
	HelpSearchLog:    "Search log",
	HelpFollow:       "Toggle follow mode",
	HelpLevel:        "Minimum level",
	SectionGeneral:   "Navigation",
	SectionMovement:  "Movement",
	SectionWishlist:  "Wishlist",
	SectionOwner:     "Owner",
	SectionForms:     "Forms",
	SectionLogs:      "Client log",
	SectionAccount:   "Account and display",
	LogSearch:        "search",
	LogFollow:        "follow",
	LogLevel:         "level",
	LogAllLevels:     "all",
}

var spanish = map[Key]string{
	Loading:   "Cargando...",
	Cancel:    "Cancelar",
	Save:      "Guardar",
	Edit:      "Editar",
	Delete:    "Eliminar",
	Create:    "Crear",
	Confirm:   "Confirmar",
	Back:      "Volver",
	Copied:    "¡Copiado!",
	Yes:       "Sí",
	No:        "No",
	Quit:      "Salir",
	Refresh:   "Actualizar",
	Updated:   "Actualizado %s",
	Anonymous: "Anónimo",
	Language:  "Idioma",
	Theme:     "Tema",

	Home:        "Inicio",
	MyWishlists: "Mis Listas",
	Login:       "Iniciar Sesión",
	Logout:      "Cerrar Sesión",
	Register:    "Registrarse",
	SignedInAs:  "Sesión iniciada como %s",
	LoggedOut:   "Cerraste sesión",

	HomeTitle:             "Cumplesito - Tu Lista de Regalos",
	HomeSubtitle:          "Crea y comparte tu lista de regalos de cumpleaños con amigos y familia. ¡La forma más fácil de organizar tus deseos y evitar regalos repetidos!",
	CreateWishlistButton:  "Crear Tu Lista",
	OpenLinkPrompt:        "Abrir una lista",
	OpenLinkPlaceholder:   "Pega el enlace o el id de una lista",
	InvalidLink:           "Eso no parece un enlace de lista",
	EasyToCreateTitle:     "Fácil de Crear",
	EasyToCreateDesc:      "Agrega artículos con imágenes, descripciones y enlaces en segundos",
	ShareWithFriendsTitle: "Compartir con Amigos",
	ShareWithFriendsDesc:  "Obtén un enlace único para compartir con tus amigos y familia",
	TrackPurchasesTitle:   "Seguir Compras",
	TrackPurchasesDesc:    "Los amigos pueden marcar artículos como comprados para evitar duplicados",
	FooterText:            "Hecho con ❤️ para celebraciones especiales",

	CreateWishlistTitle:        "Crea Tu Lista de Deseos",
	CreateWishlistSubtitle:     "Comparte tus deseos de cumpleaños con amigos y familia",
	WishlistTitle:              "Título de la Lista",
	WishlistTitlePlaceholder:   "ej., Mi Cumpleaños #30",
	YourName:                   "Tu Nombre",
	YourNamePlaceholder:        "ej., Juan Pérez",
	BirthdayDate:               "Fecha de Cumpleaños (AAAA-MM-DD)",
	Description:                "Descripción",
	DescriptionPlaceholder:     "Cuéntale a tus amigos sobre esta lista de deseos...",
	AllowAnonymousPurchase:     "Permitir compras anónimas",
	AllowAnonymousPurchaseHelp: "Si se activa, las personas pueden comprar artículos sin ingresar su nombre",
	CreateWishlistSubmit:       "Crear Lista",
	Creating:                   "Creando...",
	CreateWishlistNote:         "¡Después de crear tu lista, podrás agregar artículos y obtener un enlace para compartir con tus amigos!",

	AddItem:        "Agregar Artículo",
	CopyShareLink:  "Copiar Enlace",
	CopyLink:       "Copiar Enlace",
	OwnerNotice:    "Eres el propietario de esta lista. Puedes agregar, editar y eliminar artículos. ¡Comparte el enlace con tus amigos!",
	NoItemsYet:     "No hay artículos aún",
	NoItemsOwner:   "¡Comienza agregando artículos a tu lista!",
	NoItemsVisitor: "El propietario aún no ha agregado artículos.",
	AddFirstItem:   "Agregar Tu Primer Artículo",
	ByOwner:        "de %s",
	ItemCounts:     "%d artículos · %d disponibles · %d reservados · %d comprados",
	ProfileTitle:   "Sobre el cumpleañero",
	ProfileHint:    "Este perfil ayuda a elegir el regalo perfecto",
	ShareLinkLabel: "Enlace para compartir",

	ViewProduct:       "Ver Producto",
	MarkAsPurchased:   "Marcar como Comprado",
	UnmarkAsPurchased: "Desmarcar Comprado",
	PurchasedBy:       "Comprado por %s",
	ReservedBy:        "Reservado por %s",
	ReserveItem:       "Reservar",
	UnreserveItem:     "Liberar reserva",
	YourNameInput:     "Tu nombre",
	NameOptional:      "Tu nombre (opcional)",
	ConfirmPurchase:   "Confirmar Compra",
	ConfirmReserve:    "Confirmar Reserva",
	StateAvailable:    "Disponible",
	StateReserved:     "Reservado",
	StatePurchased:    "Comprado",
	StateOpen:         "Recaudando",
	StateFunded:       "Completado",
	PooledGift:        "Regalo grupal",
	Raised:            "Recaudado",
	Goal:              "Meta",
	Remaining:         "Falta",
	Contributions:     "Aportes",
	NoContributions:   "Aún no hay aportes",

	AddNewItem:           "Agregar Nuevo Artículo",
	EditItem:             "Editar Artículo",
	ItemTitle:            "Título",
	ItemDescription:      "Descripción",
	ImageURL:             "URL de Imagen",
	ImageURLOptional:     "URL de Imagen (opcional - se detecta automáticamente)",
	ProductURL:           "URL del Producto",
	ItemType:             "Tipo de regalo",
	TypeStandard:         "Regalo individual",
	TypePooled:           "Regalo grupal",
	TargetAmount:         "Monto meta",
	AddItemButton:        "Agregar Artículo",
	UpdateItemButton:     "Actualizar Artículo",
	Autofill:             "Auto-llenar",
	Autofilling:          "Buscando datos del producto...",
	Autofilled:           "Datos completados desde la página del producto",
	MetadataNeedsURL:     "Por favor ingresa una URL válida primero",
	MetadataFailed:       "No se pudo extraer información de la URL. Intenta ingresar los datos manualmente.",
	MetadataBlocked:      "Esta tienda bloquea la extracción automática. Copia el título y la dirección de la imagen a mano.",
	DeleteItemConfirm:    "¿Eliminar \"%s\"?",
	ItemAdded:            "Artículo agregado",
	ItemUpdated:          "Artículo actualizado",
	ItemDeleted:          "Artículo eliminado",
	PurchaseRecorded:     "Marcado como comprado",
	PurchaseCleared:      "Compra desmarcada",
	ReservationRecorded:  "Reservado",
	ReservationCleared:   "Reserva liberada",
	ContributionRecorded: "¡Gracias por tu aporte!",

	ContributeTitle:   "Aportar",
	ContributorName:   "Tu nombre",
	Amount:            "Monto",
	Message:           "Mensaje",
	MessageOptional:   "Mensaje (opcional)",
	QuickAmounts:      "Montos rápidos",
	ContributeButton:  "Aportar",
	Contributing:      "Enviando...",
	AmountExceeds:     "El monto supera lo que falta: %s",
	AmountInvalid:     "Ingresa un monto como 25 o 12.50",
	NameRequired:      "El nombre es requerido",
	ContributionEnded: "Este regalo ya está completo",

	LoginTitle:       "Bienvenido de Nuevo",
	LoginSubtitle:    "Inicia sesión para gestionar tus listas",
	Email:            "Email",
	Password:         "Contraseña",
	LoginButton:      "Iniciar Sesión",
	LoggingIn:        "Iniciando sesión...",
	NoAccount:        "¿No tienes cuenta? Presiona ctrl+r para crear una",
	RegisterTitle:    "Crear Cuenta",
	RegisterSubtitle: "Únete para crear y gestionar tus listas",
	Name:             "Nombre",
	RegisterButton:   "Registrarse",
	Registering:      "Creando cuenta...",
	HaveAccount:      "¿Ya tienes cuenta? Presiona ctrl+l para iniciar sesión",

	MyWishlistsTitle:    "Mis Listas de Deseos",
	MyWishlistsSubtitle: "Ver y gestionar todas tus listas",
	NoWishlistsYet:      "No hay listas aún",
	CreateFirstWishlist: "¡Crea tu primera lista para comenzar!",
	Items:               "artículos",
	ViewWishlist:        "Ver Lista",
	DeleteWishlist:      "Eliminar Lista",
	DeleteConfirm:       "¿Estás seguro de que quieres eliminar esta lista?",
	WishlistDeleted:     "Lista eliminada",
	LoginRequired:       "Primero inicia sesión",

	Required:         "Este campo es obligatorio",
	InvalidURL:       "Por favor ingresa una URL válida",
	InvalidEmail:     "Por favor ingresa un email válido",
	InvalidDate:      "Usa el formato AAAA-MM-DD",
	PasswordTooShort: "La contraseña debe tener al menos 6 caracteres",
	AmountPositive:   "El monto debe ser mayor a 0",
	InvalidValue:     "Valor inválido",

	ErrorLoadingWishlist:  "Error al cargar la lista",
	ErrorCreatingWishlist: "Error al crear la lista. Por favor intenta de nuevo.",
	ErrorDeletingWishlist: "Error al eliminar la lista",
	ErrorLoadingLists:     "Error al cargar tus listas",
	ErrorAddingItem:       "Error al agregar artículo",
	ErrorUpdatingItem:     "Error al actualizar artículo",
	ErrorDeletingItem:     "Error al eliminar artículo",
	ErrorPurchase:         "Error al actualizar la compra",
	ErrorReserve:          "Error al actualizar la reserva",
	ErrorContribute:       "Error al registrar el aporte",
	ErrorLogin:            "Email o contraseña incorrectos",
	ErrorRegister:         "Error al crear cuenta. Por favor intenta de nuevo.",
	ErrorGeneric:          "Algo salió mal",
	ErrorCopy:             "No se pudo copiar al portapapeles",
	WishlistNotFound:      "Lista no encontrada",
	Offline:               "Servidor no disponible",
	RefreshWarning:        "Guardado, pero no se pudo recargar la lista",
	NotAllowed:            "Esa acción no está disponible para este artículo ahora",

	AdLabel:       "Publicidad",
	AdPlaceholder: "Espacio publicitario",
	HelpTitle:     "Atajos de teclado",
	LogsTitle:     "Registro del cliente",
	LogsEmpty:     "Aún no hay líneas de registro",

	HelpToggle:       "Mostrar ayuda",
	HelpCycleTheme:   "Cambiar tema",
	HelpLanguage:     "Cambiar idioma",
	HelpHome:         "Inicio",
	HelpNewWishlist:  "Nueva lista",
	HelpOpenLink:     "Abrir enlace",
	HelpClientLog:    "Registro del cliente",
	HelpMoveUp:       "Subir",
	HelpMoveDown:     "Bajar",
	HelpTop:          "Ir al inicio",
	HelpBottom:       "Ir al final",
	HelpHalfPageUp:   "Media página arriba",
	HelpHalfPageDown: "Media página abajo",
	HelpReserve:      "Reservar o liberar",
	HelpPurchase:     "Comprar o deshacer",
	HelpContribute:   "Aportar",
	HelpCopyLink:     "Copiar enlace",
	HelpAddItem:      "Agregar artículo",
	HelpNextField:    "Campo siguiente",
	HelpPrevField:    "Campo anterior",
	HelpToggleField:  "Alternar",
	HelpAutofill:     "Autocompletar",
	HelpQuickAmount:  "Monto rápido",
	HelpSearchLog:    "Buscar en el registro",
	HelpFollow:       "Seguir el final",
	HelpLevel:        "Nivel mínimo",
	SectionGeneral:   "Navegación",
	SectionMovement:  "Movimiento",
	SectionWishlist:  "Lista",
	SectionOwner:     "Dueño",
	SectionForms:     "Formularios",
	SectionLogs:      "Registro del cliente",
	SectionAccount:   "Cuenta y pantalla",
	LogSearch:        "buscar",
	LogFollow:        "seguir",
	LogLevel:         "nivel",
	LogAllLevels:     "todos",
}
