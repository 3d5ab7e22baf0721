package models

// Option is a closed {value,label} pair. The backend only relies on the
// value set; labels are served to the UI as-is.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var StatusOptions = []Option{
	{Value: StatusPending, Label: "Beklemede"},
	{Value: StatusDiagnosing, Label: "Teşhis Aşamasında"},
	{Value: StatusRepairing, Label: "Tamirde"},
	{Value: StatusWaitingPart, Label: "Parça Bekliyor"},
	{Value: StatusCompleted, Label: "Tamamlandı"},
	{Value: StatusDelivered, Label: "Teslim Edildi"},
	{Value: StatusCancelled, Label: "İptal Edildi"},
}

var BrandOptions = []Option{
	{Value: "apple", Label: "Apple"},
	{Value: "dell", Label: "Dell"},
	{Value: "hp", Label: "HP"},
	{Value: "lenovo", Label: "Lenovo"},
	{Value: "asus", Label: "Asus"},
	{Value: "acer", Label: "Acer"},
	{Value: "toshiba", Label: "Toshiba"},
	{Value: "msi", Label: "MSI"},
	{Value: "custom", Label: "Diğer"},
}

var DiagnosisOptions = []Option{
	{Value: "display", Label: "Ekran Arızası"},
	{Value: "battery", Label: "Batarya Sorunu"},
	{Value: "keyboard", Label: "Klavye Arızası"},
	{Value: "motherboard", Label: "Anakart Arızası"},
	{Value: "software", Label: "Yazılım Sorunu"},
	{Value: "custom", Label: "Diğer"},
}

var ExpenseTypeOptions = []Option{
	{Value: "electricity", Label: "Elektrik"},
	{Value: "internet", Label: "İnternet"},
	{Value: "rent", Label: "Kira"},
	{Value: "maintenance", Label: "Aidat"},
	{Value: "supplies", Label: "Sarf Malzemesi"},
	{Value: "market", Label: "Market"},
	{Value: "other", Label: "Diğer"},
}

// Values flattens an option list to its value set.
func Values(opts []Option) []string {
	values := make([]string, 0, len(opts))
	for _, o := range opts {
		values = append(values, o.Value)
	}
	return values
}

// Label resolves an option value to its display label, falling back to the
// raw value when it is not part of the list (custom entries).
func Label(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// IsValidOption reports whether value belongs to the option list.
func IsValidOption(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
