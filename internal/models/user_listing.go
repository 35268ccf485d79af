package models

// UserTypeGroup is one section of the user listing report
type UserTypeGroup struct {
	UserType     UserType `json:"user_type"`
	Users        []User   `json:"users"`
	Count        int      `json:"count"`
	RunningTotal int      `json:"running_total"`
}

// UserListingReport groups users by type in order of first appearance
type UserListingReport struct {
	Groups     []UserTypeGroup `json:"groups"`
	GrandTotal int             `json:"grand_total"`
}
