package relay

import "encoding/json"

// The relay's response shape is deliberately loose, so extraction is an
// ordered list of named strategies tried in sequence. The raw body is the
// final fallback, guaranteeing some textual content is always produced.
type extractStrategy struct {
	name    string
	extract func(payload map[string]interface{}) (string, bool)
}

var extractStrategies = []extractStrategy{
	{name: "assistant_field", extract: assistantField},
	{name: "chat_completion_choice", extract: chatCompletionChoice},
	{name: "message_field", extract: messageField},
}

// ExtractReply pulls reply text out of an arbitrary relay response body.
func ExtractReply(body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return string(body)
	}
	for _, s := range extractStrategies {
		if text, ok := s.extract(payload); ok {
			return text
		}
	}
	return string(body)
}

func assistantField(payload map[string]interface{}) (string, bool) {
	text, ok := payload["assistant"].(string)
	return text, ok && text != ""
}

// chatCompletionChoice handles the chat-completion shape:
// { choices: [ { message: { content } } ] }
func chatCompletionChoice(payload map[string]interface{}) (string, bool) {
	choices, ok := payload["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", false
	}
	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", false
	}
	message, ok := choice["message"].(map[string]interface{})
	if !ok {
		return "", false
	}
	content, ok := message["content"].(string)
	return content, ok
}

// messageField handles both a plain string message and an ollama-style
// message object carrying a content field.
func messageField(payload map[string]interface{}) (string, bool) {
	switch message := payload["message"].(type) {
	case string:
		return message, message != ""
	case map[string]interface{}:
		content, ok := message["content"].(string)
		return content, ok
	}
	return "", false
}
