package social

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// ExportJSON writes the network as 2-space indented JSON. Users with no id
// are skipped, matching the validator's view that such records are not
// addressable.
func (n *Network) ExportJSON(w io.Writer) error {
	out := Network{Users: []User{}}
	for _, user := range n.Users {
		if user.ID == "" {
			continue
		}
		out.Users = append(out.Users, user)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(err, "encode network")
	}
	return nil
}
