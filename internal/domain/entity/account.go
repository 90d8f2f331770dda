// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Account is the core entity in the system, representing one registered
// identity. Email doubles as the primary key of the credential store and
// is matched byte-wise (no case normalization).
type Account struct {
	Email        string // Login identifier, unique within the store.
	PasswordHash string // bcrypt hash of the password. Never leaves the process.
	Role         Role   // The single role assigned at signup. Immutable.
	CreatedAt    int    // Calendar year of account creation.
}

// AccountView is the outward projection of an Account: everything except
// the password hash. All responses carry this type so the hash cannot be
// serialized by accident.
type AccountView struct {
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CreatedAt int    `json:"createdAt"`
}

// View returns the public projection of the account.
func (a Account) View() AccountView {
	return AccountView{
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
	}
}

// Views projects a full account set for responses listing every user.
func Views(accounts []Account) []AccountView {
	views := make([]AccountView, len(accounts))
	for i, a := range accounts {
		views[i] = a.View()
	}

	return views
}
