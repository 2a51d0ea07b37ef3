package entities

// Kind names an entity collection.
type Kind string

const (
	KindProject     Kind = "project"
	KindPersonnel   Kind = "personnel"
	KindMaterial    Kind = "material"
	KindTransaction Kind = "transaction"
	KindLabTest     Kind = "labtest"
	KindListing     Kind = "listing"
)

var storageKeys = map[Kind]string{
	KindProject:     "projects",
	KindPersonnel:   "personnel",
	KindMaterial:    "materials",
	KindTransaction: "transactions",
	KindLabTest:     "labtests",
	KindListing:     "listings",
}

// Kinds returns every kind in display order.
func Kinds() []Kind {
	return []Kind{KindProject, KindPersonnel, KindMaterial, KindTransaction, KindLabTest, KindListing}
}

// ParseKind validates a kind received from a user.
func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	_, ok := storageKeys[k]
	return k, ok
}

// StorageKey is the fixed key suffix the collection is persisted under.
func (k Kind) StorageKey() string {
	return storageKeys[k]
}
