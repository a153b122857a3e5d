package api

type Site struct {
	ID         string `json:"id,omitempty"`
	ContentURL string `json:"contentUrl"`
}

type User struct {
	ID string `json:"id"`
}

type Credentials struct {
	PersonalAccessTokenName   string `json:"personalAccessTokenName,omitempty"`
	PersonalAccessTokenSecret string `json:"personalAccessTokenSecret,omitempty"`
	Site                      Site   `json:"site"`
	Token                     string `json:"token,omitempty"`
	User                      *User  `json:"user,omitempty"`
}

type SignInRequest struct {
	Credentials Credentials `json:"credentials"`
}

type SignInResponse struct {
	Credentials *Credentials `json:"credentials"`
}

type ProductVersion struct {
	Value string `json:"value"`
	Build string `json:"build"`
}

type ServerInfo struct {
	ProductVersion ProductVersion `json:"productVersion"`
	RestAPIVersion string         `json:"restApiVersion"`
}

type ServerInfoResponse struct {
	ServerInfo *ServerInfo `json:"serverInfo"`
}
