package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringArray stores a string slice as a JSON text column.
type StringArray []string

// Value implements driver.Valuer.
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			*a = []string{}
			return nil
		}
		return json.Unmarshal(v, (*[]string)(a))
	case string:
		if v == "" {
			*a = []string{}
			return nil
		}
		return json.Unmarshal([]byte(v), (*[]string)(a))
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}
}

// SocialLink is a single (platform, url) pair on an account profile.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// SocialLinks stores a list of social links as a JSON text column.
type SocialLinks []SocialLink

// Value implements driver.Valuer.
func (l SocialLinks) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal([]SocialLink(l))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (l *SocialLinks) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			*l = SocialLinks{}
			return nil
		}
		return json.Unmarshal(v, (*[]SocialLink)(l))
	case string:
		if v == "" {
			*l = SocialLinks{}
			return nil
		}
		return json.Unmarshal([]byte(v), (*[]SocialLink)(l))
	default:
		return fmt.Errorf("unsupported type for SocialLinks: %T", value)
	}
}

// Caller is the authenticated identity attached to a request after the
// bearer token has been verified and the account reloaded.
type Caller struct {
	ID    uint
	Email string
	Role  Role
}

// Elevated reports whether the caller is exempt from ownership checks.
func (c *Caller) Elevated() bool {
	return c != nil && c.Role.Elevated()
}
