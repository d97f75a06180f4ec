// Package account demonstrates composed structured types: a shared base
// field set extended with input-only and storage-only fields, plus a form
// login endpoint.
package account

import (
	"github.com/yegordb/bindkit/binder"
)

// userBase holds the fields every user representation shares. The input and
// storage shapes extend it rather than redeclaring the set.
var (
	userBase = binder.NewObject("UserBase",
		binder.NewField("username", binder.SourceBody, binder.String(), binder.WithMinLen(3), binder.WithMaxLen(50)),
		binder.NewField("email", binder.SourceBody, binder.String(), binder.WithPattern(`[^@\s]+@[^@\s]+`)),
		binder.NewField("full_name", binder.SourceBody, binder.String(), binder.Optional()),
	)

	userIn = userBase.Extend("UserIn",
		binder.NewField("password", binder.SourceBody, binder.String(), binder.WithMinLen(8)),
	)

	userDB = userBase.Extend("UserDB",
		binder.NewField("hashed_password", binder.SourceBody, binder.String()),
	)
)

// fakeHashPassword stands in for a real KDF; the demo stores nothing.
func fakeHashPassword(raw string) string {
	return "notreallyhashed:" + raw
}

// fakeSaveUser maps the bound input onto the storage shape, swapping the
// plaintext password for its hash. The returned record carries exactly the
// userDB fields.
func fakeSaveUser(in map[string]any) map[string]any {
	record := make(map[string]any, len(userDB.Fields))
	for _, f := range userDB.Fields {
		if f.Name == "hashed_password" {
			record[f.Name] = fakeHashPassword(in["password"].(string))
			continue
		}
		record[f.Name] = in[f.Name]
	}
	return record
}

// publicView strips a record down to the shared base fields.
func publicView(record map[string]any) map[string]any {
	out := make(map[string]any, len(userBase.Fields))
	for _, f := range userBase.Fields {
		out[f.Name] = record[f.Name]
	}
	return out
}
