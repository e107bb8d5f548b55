package domain

import "strings"

// StoreType is the closed set of venue categories the classifier may assign.
type StoreType string

const (
	StoreTypeCarDealer                StoreType = "car_dealer"
	StoreTypeGasStation               StoreType = "gas_station"
	StoreTypeArtGallery               StoreType = "art_gallery"
	StoreTypeLibrary                  StoreType = "library"
	StoreTypeWineBar                  StoreType = "wine_bar"
	StoreTypeDrugstore                StoreType = "drugstore"
	StoreTypePharmacy                 StoreType = "pharmacy"
	StoreTypeFlorist                  StoreType = "florist"
	StoreTypeStorage                  StoreType = "storage"
	StoreTypeTailor                   StoreType = "tailor"
	StoreTypeTourAgency               StoreType = "tour_agency"
	StoreTypeTouristInformationCenter StoreType = "tourist_information_center"
	StoreTypeTravelAgency             StoreType = "travel_agency"
	StoreTypeBicycleStore             StoreType = "bicycle_store"
	StoreTypeBookStore                StoreType = "book_store"
	StoreTypeClothingStore            StoreType = "clothing_store"
	StoreTypeConvenienceStore         StoreType = "convenience_store"
	StoreTypeDepartmentStore          StoreType = "department_store"
	StoreTypeElectronicsStore         StoreType = "electronics_store"
	StoreTypeFurnitureStore           StoreType = "furniture_store"
	StoreTypeGreengrocer              StoreType = "grocery_or_supermarket"
	StoreTypeHardwareStore            StoreType = "hardware_store"
	StoreTypeHomeGoodsStore           StoreType = "home_goods_store"
	StoreTypeJewelryStore             StoreType = "jewelry_store"
	StoreTypeLiquorStore              StoreType = "liquor_store"
	StoreTypePetStore                 StoreType = "pet_store"
	StoreTypeShoeStore                StoreType = "shoe_store"
	StoreTypeShoppingMall             StoreType = "shopping_mall"
	StoreTypeSportingGoodsStore       StoreType = "sporting_goods_store"
	StoreTypeGeneralStore             StoreType = "store"
	StoreTypeSupermarket              StoreType = "supermarket"
)

// DefaultStoreType is the fallback when classification fails.
const DefaultStoreType = StoreTypeGeneralStore

var allStoreTypes = []StoreType{
	StoreTypeCarDealer,
	StoreTypeGasStation,
	StoreTypeArtGallery,
	StoreTypeLibrary,
	StoreTypeWineBar,
	StoreTypeDrugstore,
	StoreTypePharmacy,
	StoreTypeFlorist,
	StoreTypeStorage,
	StoreTypeTailor,
	StoreTypeTourAgency,
	StoreTypeTouristInformationCenter,
	StoreTypeTravelAgency,
	StoreTypeBicycleStore,
	StoreTypeBookStore,
	StoreTypeClothingStore,
	StoreTypeConvenienceStore,
	StoreTypeDepartmentStore,
	StoreTypeElectronicsStore,
	StoreTypeFurnitureStore,
	StoreTypeGreengrocer,
	StoreTypeHardwareStore,
	StoreTypeHomeGoodsStore,
	StoreTypeJewelryStore,
	StoreTypeLiquorStore,
	StoreTypePetStore,
	StoreTypeShoeStore,
	StoreTypeShoppingMall,
	StoreTypeSportingGoodsStore,
	StoreTypeGeneralStore,
	StoreTypeSupermarket,
}

var storeTypeSet = func() map[StoreType]struct{} {
	set := make(map[StoreType]struct{}, len(allStoreTypes))
	for _, t := range allStoreTypes {
		set[t] = struct{}{}
	}
	return set
}()

// AllStoreTypes returns every valid store type in declaration order.
func AllStoreTypes() []StoreType {
	out := make([]StoreType, len(allStoreTypes))
	copy(out, allStoreTypes)
	return out
}

// ParseStoreType validates a raw classifier value against the closed set.
func ParseStoreType(v string) (StoreType, bool) {
	t := StoreType(strings.TrimSpace(strings.ToLower(v)))
	_, ok := storeTypeSet[t]
	return t, ok
}

func (t StoreType) String() string {
	return string(t)
}

// SearchTerm renders the type as a free-text search query ("wine_bar" -> "wine bar").
func (t StoreType) SearchTerm() string {
	return strings.ReplaceAll(string(t), "_", " ")
}
