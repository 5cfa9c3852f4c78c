package usecase

import (
	"fmt"
	"strings"
)

const defaultGreetingName = "World"

type GreetService struct {
	name string
}

func NewGreetService(name string) *GreetService {
	return &GreetService{name: name}
}

// Greeting is the JSON body of the greet endpoint.
type Greeting struct {
	Message string `json:"message"`
}

// Greet formats the greeting for name, falling back to the configured name
// and then to "World".
func (s *GreetService) Greet(name string) Greeting {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.name
	}
	if name == "" {
		name = defaultGreetingName
	}
	return Greeting{Message: fmt.Sprintf("%s %s!", "Hello", name)}
}
