package credential_test

import (
	"fmt"
	"log"

	"github.com/hasbyte1/go-password-utils/credential"
)

// Example_defaultHasher demonstrates the basic hash-then-verify flow.
func Example_defaultHasher() {
	h, err := credential.NewHasher(credential.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	stored, err := h.Hash("my-secret-password")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(h.Verify("my-secret-password", stored))
	fmt.Println(h.Verify("wrong-password", stored))
	// Output:
	// true
	// false
}

// Example_rehashOnLogin demonstrates migrating credentials to a stronger
// policy as users log in.
func Example_rehashOnLogin() {
	// A credential hashed years ago under the single-pass default.
	old, _ := credential.NewHasher(credential.DefaultOptions())
	stored, _ := old.Hash("hunter2")

	// The current policy is the hardened web profile.
	opts, _ := credential.ProfileOptions(credential.ProfileWeb)
	h, _ := credential.NewHasher(opts)

	if h.Verify("hunter2", stored) && h.NeedsRehash(stored) {
		fresh, err := h.Upgrade("hunter2", stored)
		if err != nil {
			log.Fatal(err)
		}
		stored = fresh // persist the replacement
	}

	fmt.Println(h.Verify("hunter2", stored))
	fmt.Println(h.NeedsRehash(stored))
	// Output:
	// true
	// false
}

// Example_verifyDetailed demonstrates the observable verification variant,
// which never fails — problems surface in the result, not as errors.
func Example_verifyDetailed() {
	h, _ := credential.NewHasher(credential.DefaultOptions())

	res := h.VerifyDetailed("anyPassword", "not-a-valid-credential")
	fmt.Println(res.IsValid)
	fmt.Println(res.Note != "")
	// Output:
	// false
	// true
}
