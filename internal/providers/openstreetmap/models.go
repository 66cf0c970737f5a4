package openstreetmap

// LookupAPIResponse is the subset of a Nominatim reverse lookup the
// resolver reads. Every field is optional upstream.
type LookupAPIResponse struct {
	PlaceId     int         `json:"place_id"`
	Licence     string      `json:"licence"`
	OsmType     string      `json:"osm_type"`
	OsmId       int         `json:"osm_id"`
	Lat         string      `json:"lat"`
	Lon         string      `json:"lon"`
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
	Address     AddressInfo `json:"address"`
	Error       string      `json:"error"`
}

// AddressInfo is the addressdetails block of a lookup
type AddressInfo struct {
	HouseNumber string `json:"house_number"`
	Road        string `json:"road"`
	Suburb      string `json:"suburb"`
	Village     string `json:"village"`
	Town        string `json:"town"`
	City        string `json:"city"`
	County      string `json:"county"`
	State       string `json:"state"`
	Region      string `json:"region"`
	Postcode    string `json:"postcode"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}
