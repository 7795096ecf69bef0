package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// Request types accepted by the relay.
	RelayTypeChatMessage     = "chat_message"
	RelayTypeGenerateRoutine = "generate_routine"

	// Persona instruction the relay prepends to every upstream call.
	AdvisorPersonaPrompt = `You are a friendly product advisor for skincare, haircare, makeup, fragrance, and personal care products. Be warm, professional, and helpful. When asked to build a routine, use the provided products and their descriptions; give clear, step-by-step routines, explain why each product is used and when to apply it, and offer gentle tips and alternatives when appropriate. Keep tone friendly and enthusiastic, and keep answers concise and practical. If important details are missing (skin type, hair type, concern), ask a short clarifying question before providing a full routine.`

	// Fixed upstream generation parameters.
	UpstreamModel            = "gpt-4o"
	UpstreamMaxTokens        = 800
	UpstreamTemperature      = 0.5
	UpstreamFrequencyPenalty = 0.8

	// Transcript messages surfaced to the user.
	MsgSelectionRequired   = "Please select at least one product before generating a routine,"
	MsgGenerateRoutine     = "Generate a routine for the selected products."
	MsgSelectionsCleared   = "Your selected products have been cleared."
	MsgRelayFailure        = "Sorry, something went wrong. Please try again later."
	MsgChatNotConfigured   = "Chat is not configured or an error occurred. Set RELAY_URL to enable AI responses."
	MsgRoutineErrorPrefix  = "Error generating routine: "
	MsgNoDescription       = "No description."
	MsgCategoryPlaceholder = "Select a category to view products"

	// Event bus topic for appended conversation turns.
	ChatTurnTopic = "CHAT_TURN_APPENDED"

	// Single key the selection set is persisted under, both in the file store
	// and in redis.
	SelectionStoreKey = "selected_products"
)
