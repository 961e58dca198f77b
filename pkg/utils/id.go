package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um id interno curto para entidades da hierarquia
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}

// GenerateState gera o state opaco usado no fluxo OAuth
func GenerateState() (string, error) {
	return gonanoid.Generate(characters, 24)
}
