package entities

// Rider представляет локально сохранённую запись сессии райдера.
// RiderID является каноническим идентификатором; ID хранит значение,
// которое сервер мог вернуть под альтернативным именем поля.
type Rider struct {
	RiderID       string
	ID            string
	Name          string
	Phone         string
	Email         string
	VehicleType   string
	VehicleNumber string
	Status        RiderStatusType
}

// Normalized возвращает копию записи с заполненным каноническим идентификатором.
// Если RiderID отсутствует, подставляется альтернативное поле ID.
func (r Rider) Normalized() Rider {
	if r.RiderID == "" {
		r.RiderID = r.ID
	}
	return r
}

// HasIdentity сообщает, есть ли у записи канонический идентификатор после нормализации.
func (r Rider) HasIdentity() bool {
	return r.Normalized().RiderID != ""
}

type RiderStatusType string

const (
	RiderOnline  RiderStatusType = "online"
	RiderOffline RiderStatusType = "offline"
)

func (t RiderStatusType) String() string {
	return string(t)
}

// RiderRegistration содержит поля формы регистрации нового райдера.
type RiderRegistration struct {
	Name          string
	Phone         string
	Password      string
	VehicleType   string
	VehicleNumber string
}

// RiderModify описывает частичное обновление профиля.
type RiderModify struct {
	Name          *string
	Email         *string
	VehicleType   *string
	VehicleNumber *string
}
