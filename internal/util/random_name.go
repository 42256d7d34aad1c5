package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Bluffing", "Folding", "Raising", "Lucky", "Unlucky", "Patient", "Reckless", "Cautious", "Stoic", "Grinning",
	"Quiet", "Loud", "Crafty", "Steady", "Wild", "Cool", "Sly", "Bold", "Shifty", "Stone-Faced",
}

var animals = []string{
	"Shark", "Fish", "Fox", "Owl", "Wolf", "Badger", "Raccoon", "Coyote", "Hawk", "Crow",
	"Otter", "Weasel", "Lynx", "Moose", "Bear", "Rattler", "Mule", "Jackal", "Vulture", "Armadillo",
}

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
