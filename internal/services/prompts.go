package services

import (
	"fmt"

	"tinta/internal/domain"
)

func composeColorPrompt(prompt string, colorCount int, creativity domain.Creativity) string {
	return fmt.Sprintf(`Create %d colors based on the input prompt.
Return valid HEX colors in a JSON array format, such as ["#66D3BB","#7EDDC6","#96E7D1","#AEEFDB","#C6F9E6"].
Do not include any other text or formatting, just the JSON array of colors.
If you cannot create colors, return an empty JSON array [].

Prompt: %s

Creativity: %s

JSON colors:`, colorCount, prompt, creativity)
}

func composeDescriptionPrompt(prompt string, creativity domain.Creativity) string {
	return fmt.Sprintf(`Create a description for the set of created colors, considering the prompt that the user gave.
Importantly, the description must be clear, concise and have a maximum length of
%d characters.

Prompt: %s

Creativity: %s
`, domain.DescriptionMaxLength, prompt, creativity)
}

func composeTitlePrompt(prompt, description string, creativity domain.Creativity) string {
	return fmt.Sprintf(`Create a title for the set of created colors, considering the prompt that the user gave.
Also, consider the description you just created.
Importantly, the title must be clear, concise and have a maximum length of
%d characters.

Prompt: %s

Description: %s

Creativity: %s
`, domain.NameMaxLength, prompt, description, creativity)
}
