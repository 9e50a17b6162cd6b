package i18n

// Key names one translatable string.
type Key string

const (
	// Brand
	BrandName    Key = "brand.name"
	BrandTagline Key = "brand.tagline"

	// Navigation
	NavSearch   Key = "nav.search"
	NavWishlist Key = "nav.wishlist"
	NavCart     Key = "nav.cart"
	NavProfile  Key = "nav.profile"
	NavOrders   Key = "nav.orders"
	NavVendor   Key = "nav.vendor"
	NavLogout   Key = "nav.logout"
	NavLogin    Key = "nav.login"

	// Common
	CommonViewDetails        Key = "common.viewDetails"
	CommonAddToCart          Key = "common.addToCart"
	CommonAddToWishlist      Key = "common.addToWishlist"
	CommonRemoveFromWishlist Key = "common.removeFromWishlist"
	CommonInStock            Key = "common.inStock"
	CommonOutOfStock         Key = "common.outOfStock"
	CommonPrice              Key = "common.price"
	CommonQuantity           Key = "common.quantity"
	CommonTotal              Key = "common.total"
	CommonSubtotal           Key = "common.subtotal"
	CommonContinue           Key = "common.continue"
	CommonCheckout           Key = "common.checkout"
	CommonPlaceOrder         Key = "common.placeOrder"
	CommonCancel             Key = "common.cancel"
	CommonSave               Key = "common.save"
	CommonEdit               Key = "common.edit"
	CommonDelete             Key = "common.delete"
	CommonRemove             Key = "common.remove"
	CommonUpdate             Key = "common.update"
	CommonBackToHome         Key = "common.backToHome"
	CommonLoading            Key = "common.loading"

	// Categories
	CategoryBooks       Key = "category.books"
	CategoryNotebooks   Key = "category.notebooks"
	CategoryPens        Key = "category.pens"
	CategoryArt         Key = "category.art"
	CategoryBackpacks   Key = "category.backpacks"
	CategoryCalculators Key = "category.calculators"
	CategoryFolders     Key = "category.folders"
	CategoryAll         Key = "category.all"

	// Home Page
	HomeHeroTitle    Key = "home.hero.title"
	HomeHeroSubtitle Key = "home.hero.subtitle"
	HomeFeatured     Key = "home.featured"
	HomeCategories   Key = "home.categories"
	HomeNewArrivals  Key = "home.newArrivals"
	HomeBestSellers  Key = "home.bestSellers"

	// Cart
	CartTitle     Key = "cart.title"
	CartEmpty     Key = "cart.empty"
	CartEmptyDesc Key = "cart.emptyDesc"
	CartItems     Key = "cart.items"
	CartClearCart Key = "cart.clearCart"

	// Wishlist
	WishlistTitle     Key = "wishlist.title"
	WishlistEmpty     Key = "wishlist.empty"
	WishlistEmptyDesc Key = "wishlist.emptyDesc"

	// Checkout
	CheckoutTitle         Key = "checkout.title"
	CheckoutShippingInfo  Key = "checkout.shippingInfo"
	CheckoutPaymentMethod Key = "checkout.paymentMethod"
	CheckoutOrderSummary  Key = "checkout.orderSummary"
	CheckoutFirstName     Key = "checkout.firstName"
	CheckoutLastName      Key = "checkout.lastName"
	CheckoutEmail         Key = "checkout.email"
	CheckoutPhone         Key = "checkout.phone"
	CheckoutAddress       Key = "checkout.address"
	CheckoutCity          Key = "checkout.city"
	CheckoutZipCode       Key = "checkout.zipCode"

	// Orders
	OrdersTitle       Key = "orders.title"
	OrdersEmpty       Key = "orders.empty"
	OrdersEmptyDesc   Key = "orders.emptyDesc"
	OrdersOrderNumber Key = "orders.orderNumber"
	OrdersDate        Key = "orders.date"
	OrdersStatus      Key = "orders.status"
	OrdersItems       Key = "orders.items"
	OrdersViewDetails Key = "orders.viewDetails"

	// Profile
	ProfileTitle          Key = "profile.title"
	ProfilePersonalInfo   Key = "profile.personalInfo"
	ProfileChangePassword Key = "profile.changePassword"
	ProfileName           Key = "profile.name"

	// Footer
	FooterAbout           Key = "footer.about"
	FooterAboutDesc       Key = "footer.aboutDesc"
	FooterQuickLinks      Key = "footer.quickLinks"
	FooterAboutUs         Key = "footer.aboutUs"
	FooterContact         Key = "footer.contact"
	FooterFaqs            Key = "footer.faqs"
	FooterShipping        Key = "footer.shipping"
	FooterCustomerService Key = "footer.customerService"
	FooterHelpCenter      Key = "footer.helpCenter"
	FooterReturns         Key = "footer.returns"
	FooterTrackOrder      Key = "footer.trackOrder"
	FooterTerms           Key = "footer.terms"
	FooterConnect         Key = "footer.connect"
	FooterCopyright       Key = "footer.copyright"
	FooterTagline         Key = "footer.tagline"

	// Session
	AuthSessionExpired Key = "auth.sessionExpired"
	AuthWelcome        Key = "auth.welcome"
)

// Keys lists every key each language must define.
var Keys = []Key{
	BrandName,
	BrandTagline,
	NavSearch,
	NavWishlist,
	NavCart,
	NavProfile,
	NavOrders,
	NavVendor,
	NavLogout,
	NavLogin,
	CommonViewDetails,
	CommonAddToCart,
	CommonAddToWishlist,
	CommonRemoveFromWishlist,
	CommonInStock,
	CommonOutOfStock,
	CommonPrice,
	CommonQuantity,
	CommonTotal,
	CommonSubtotal,
	CommonContinue,
	CommonCheckout,
	CommonPlaceOrder,
	CommonCancel,
	CommonSave,
	CommonEdit,
	CommonDelete,
	CommonRemove,
	CommonUpdate,
	CommonBackToHome,
	CommonLoading,
	CategoryBooks,
	CategoryNotebooks,
	CategoryPens,
	CategoryArt,
	CategoryBackpacks,
	CategoryCalculators,
	CategoryFolders,
	CategoryAll,
	HomeHeroTitle,
	HomeHeroSubtitle,
	HomeFeatured,
	HomeCategories,
	HomeNewArrivals,
	HomeBestSellers,
	CartTitle,
	CartEmpty,
	CartEmptyDesc,
	CartItems,
	CartClearCart,
	WishlistTitle,
	WishlistEmpty,
	WishlistEmptyDesc,
	CheckoutTitle,
	CheckoutShippingInfo,
	CheckoutPaymentMethod,
	CheckoutOrderSummary,
	CheckoutFirstName,
	CheckoutLastName,
	CheckoutEmail,
	CheckoutPhone,
	CheckoutAddress,
	CheckoutCity,
	CheckoutZipCode,
	OrdersTitle,
	OrdersEmpty,
	OrdersEmptyDesc,
	OrdersOrderNumber,
	OrdersDate,
	OrdersStatus,
	OrdersItems,
	OrdersViewDetails,
	ProfileTitle,
	ProfilePersonalInfo,
	ProfileChangePassword,
	ProfileName,
	FooterAbout,
	FooterAboutDesc,
	FooterQuickLinks,
	FooterAboutUs,
	FooterContact,
	FooterFaqs,
	FooterShipping,
	FooterCustomerService,
	FooterHelpCenter,
	FooterReturns,
	FooterTrackOrder,
	FooterTerms,
	FooterConnect,
	FooterCopyright,
	FooterTagline,
	AuthSessionExpired,
	AuthWelcome,
}
