package pikndel

import (
    "context"
    "net/http"
)

// LoginResult is what the gateway returns to its caller after a successful
// provider login.
type LoginResult struct {
    Token  string `json:"token"`
    UserID string `json:"userId"`
    Name   string `json:"name"`
}

// tokenLookups are tried in order until one yields a value. The order is
// load-bearing: provider responses have shifted shape across versions, and
// the nested Data.Token form must win over the flat and lowercase forms.
var tokenLookups = []func(map[string]any) string{
    func(m map[string]any) string { return nestedString(m, "Data", "Token") },
    func(m map[string]any) string { return topString(m, "Token") },
    func(m map[string]any) string { return topString(m, "UserId") },
    func(m map[string]any) string { return nestedString(m, "data", "token") },
    func(m map[string]any) string { return topString(m, "token") },
    func(m map[string]any) string { return topString(m, "userid") },
}

// Login authenticates against the provider with a password-grant body,
// falling back to the configured default credentials, and caches the
// extracted bearer token. There is no refresh loop: re-authentication only
// happens on the next explicit Login.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
    if username == "" {
        username = c.Username
    }
    if password == "" {
        password = c.Password
    }
    if username == "" || password == "" {
        return LoginResult{}, &Error{Kind: KindMissingCredentials, Message: "username and password are required"}
    }

    body := map[string]any{
        "UserName":  username,
        "Password":  password,
        "GrantType": "password",
    }
    resp, err := c.Call(ctx, http.MethodPost, loginPath, body, loginVersion, false, true)
    if err != nil {
        return LoginResult{}, err
    }

    tok := extractToken(resp)
    if tok == "" {
        return LoginResult{}, &Error{Kind: KindTokenMissing, Message: "no token in login response"}
    }
    c.Tokens.Set(ctx, tok)

    return LoginResult{
        Token:  tok,
        UserID: firstString(resp, [][]string{{"Data", "UserId"}, {"UserId"}, {"data", "userId"}, {"userid"}}),
        Name:   firstString(resp, [][]string{{"Data", "Name"}, {"Name"}, {"data", "name"}, {"name"}}),
    }, nil
}

func extractToken(m map[string]any) string {
    for _, lookup := range tokenLookups {
        if v := lookup(m); v != "" {
            return v
        }
    }
    return ""
}

func topString(m map[string]any, key string) string {
    v, _ := m[key].(string)
    return v
}

func nestedString(m map[string]any, outer, key string) string {
    inner, _ := m[outer].(map[string]any)
    if inner == nil {
        return ""
    }
    v, _ := inner[key].(string)
    return v
}

func firstString(m map[string]any, paths [][]string) string {
    for _, p := range paths {
        var v string
        switch len(p) {
        case 1:
            v = topString(m, p[0])
        case 2:
            v = nestedString(m, p[0], p[1])
        }
        if v != "" {
            return v
        }
    }
    return ""
}
