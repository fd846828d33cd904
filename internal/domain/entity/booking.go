package entity

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	ItemTypeApartment = "apartment"
	ItemTypeCar       = "car"
	ItemTypeBike      = "bike"
)

// Booking snapshots the listing's name, image and price at booking time.
// Later edits to the listing do not touch historical bookings.
type Booking struct {
	ID         string `json:"id" firestore:"-"`
	UserID     string `json:"userId" firestore:"userId"`
	ItemID     string `json:"itemId" firestore:"itemId"`
	ItemType   string `json:"itemType" firestore:"itemType"`
	ItemName   string `json:"itemName" firestore:"itemName"`
	ItemImage  string `json:"itemImage" firestore:"itemImage"`
	StartDate  string `json:"startDate" firestore:"startDate"`
	EndDate    string `json:"endDate" firestore:"endDate"`
	TotalPrice int64  `json:"totalPrice" firestore:"totalPrice"`
	Status     string `json:"status" firestore:"status"`
	CreatedAt  string `json:"createdAt" firestore:"createdAt"`
}
