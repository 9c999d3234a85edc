package pikndel

// statusLabels maps the provider's short status codes to readable labels.
var statusLabels = map[string]string{
	"NEW": "Order Created",
	"PCK": "Parcel Picked Up",
	"OFD": "Out for Delivery",
	"DLD": "Delivered",
	"RTO": "Return to Origin Initiated",
	"RTN": "Returned",
	"CAN": "Cancelled",
}

// StatusLabel returns the label for a short code; unrecognized codes pass
// through unchanged.
func StatusLabel(code string) string {
	if v, ok := statusLabels[code]; ok {
		return v
	}
	return code
}
