package memory

import (
	"testing"

	"github.com/aretw0/ariadne/pkg/ports/tests"
)

func TestStore_Contract(t *testing.T) {
	tests.RunGameStoreContract(t, NewStore())
}
