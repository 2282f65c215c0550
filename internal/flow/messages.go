package flow

// Message constants used by the conversation engine. Kept in one place so
// tests can assert on exact prompt text.
const (
	MsgAskName           = "👋 Welcome! What should we call you?"
	MsgGreetFmt          = "Nice to meet you, %s! Want to pick out a pair of shoes?"
	MsgPickKeyboard      = "Please pick an option from the keyboard ⬇️"
	MsgSizesFmt          = "Available sizes: %s\nEnter your size:"
	MsgSizeFormatHint    = "Enter a numeric size (for example: 42)"
	MsgSizeUnavailable   = "That size is not in stock. Try another one."
	MsgAskStyle          = "Pick a style:"
	MsgAskType           = "Pick a shoe type:"
	MsgStyleFromKeyboard = "Pick a style from the keyboard ⬇️"
	MsgTypeFromKeyboard  = "Pick a shoe type from the keyboard ⬇️"
	MsgNoMatch           = "Sorry, nothing in stock with those parameters 😔"
	MsgTryOther          = "Want to try different parameters?"
	MsgMoreShopping      = "Anything else?"
	MsgUseButtons        = "Use the buttons to confirm or cancel 🛒"
	MsgGoodbye           = "Thanks! Come back any time 😊"
	MsgThanksShopping    = "Thanks for shopping! 🛍️"
	MsgStoreTrouble      = "We're having trouble checking stock right now. Please try again in a moment."
)
