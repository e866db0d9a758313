package domain

import "time"

// Represents one checklist line of the vehicle inspection log.
// A checklist holds exactly one item per (category, element) pair of the
// catalog.
type InspectionItem struct {
	ID         int64
	Category   string
	Element    string
	OK         bool
	Notes      string
	ModifiedAt time.Time
}

// Header data of the inspected unit. There is a single row per log.
type UnitInfo struct {
	Unit       string
	Model      string
	Operator   string
	ModifiedAt time.Time
}

type InspectionItemPatch struct {
	OK    *bool
	Notes *string
}

type UnitInfoPatch struct {
	Unit     *string
	Model    *string
	Operator *string
}

// Apply merges the patch into u; fields left nil keep their stored value.
func (p UnitInfoPatch) Apply(u UnitInfo, at time.Time) UnitInfo {
	if p.Unit != nil {
		u.Unit = *p.Unit
	}
	if p.Model != nil {
		u.Model = *p.Model
	}
	if p.Operator != nil {
		u.Operator = *p.Operator
	}
	u.ModifiedAt = at
	return u
}

// Sort order for checklist listings.
type InspectionOrder string

const (
	OrderByElement  InspectionOrder = "element"
	OrderByModified InspectionOrder = "modified"
)

func (o InspectionOrder) Valid() bool {
	return o == OrderByElement || o == OrderByModified
}

type RGB [3]uint8

// InspectionCategory is a group of components checked together.
type InspectionCategory struct {
	Name     string
	Color    RGB
	Elements []string
}

// InspectionCatalog lists every component checked during an inspection,
// in report order.
var InspectionCatalog = []InspectionCategory{
	{
		Name:  "Fluidos",
		Color: RGB{0, 123, 255},
		Elements: []string{
			"Aceite de motor", "Aceite dirección hidráulica", "Aceite transmisión", "Aceite diferencial",
			"Agua / Anticongelante", "Refrigerante", "Líquido de frenos",
			"Nivel líquido de batería", "Nivel líquido chisgueteros",
		},
	},
	{
		Name:  "Frenos y Neumáticos",
		Color: RGB{40, 167, 69},
		Elements: []string{
			"Desgaste de llantas", "Presión de llantas", "Rines", "Birlos", "Tuercas",
			"Tuberías/mangueras frenos fugas", "Pedal freno", "Bomba frenos", "Llanta auxiliar",
		},
	},
	{
		Name:  "Dirección",
		Color: RGB{23, 162, 184},
		Elements: []string{
			"Volante", "Caja de dirección (sinfin)", "Bisletas", "Depósito aceite dirección hidráulica",
		},
	},
	{
		Name:  "Suspensión",
		Color: RGB{111, 66, 193},
		Elements: []string{
			"Muelles",
			"Amortiguador delantero izquierdo", "Amortiguador delantero derecho",
			"Amortiguador trasero izquierdo", "Amortiguador trasero derecho",
			"Barra de torsión", "Resortes",
			"Horquilla delantera izquierda", "Horquilla delantera derecha",
			"Horquilla trasera izquierda", "Horquilla trasera derecha",
			"Topes de goma",
			"Rótula delantera izquierda", "Rótula delantera derecha",
			"Rótula trasera izquierda", "Rótula trasera derecha",
		},
	},
	{
		Name:  "Sistema Eléctrico",
		Color: RGB{253, 126, 20},
		Elements: []string{
			"Batería terminales", "Alternador", "Marcha", "Switch",
			"Luz blanca baja", "Luz blanca alta", "Luces cuartos",
			"Direccionales", "Intermitentes", "Luz freno", "Claxon",
			"Luces tablero", "Luces interiores", "Luces estribo",
			"Fusibles", "Limpiaparabrisas",
		},
	},
	{
		Name:  "Transmisión",
		Color: RGB{32, 201, 151},
		Elements: []string{
			"Caja de velocidades", "Pedal clutch", "Cardán", "Crucetas",
			"Diferencial", "Flechas", "Palanca de velocidades",
		},
	},
	{
		Name:  "Sistema Mecánico",
		Color: RGB{232, 62, 140},
		Elements: []string{
			"Tapa de balancines", "Culata (fugas)", "Múltiple de admisión", "Múltiple de escape",
			"Retén cigüeñal", "Tapón del cárter", "Tapones de fundición",
			"Bomba de agua", "Radiador", "Mangueras", "Ventilador", "Bandas",
		},
	},
	{
		Name:  "Carrocería y Chasis",
		Color: RGB{52, 58, 64},
		Elements: []string{
			"Parabrisas", "Medallón", "Ventanas", "Estribo", "Piso", "Lienzos",
			"Carrocería", "Molduras", "Muelles", "Abrazaderas chasis",
			"Asientos", "Asiento conductor", "Cinturón seguridad",
			"Tubo de escape", "Escape", "Cofre", "Defensa delantera",
			"Defensa trasera", "Cajuela", "Chasis",
		},
	},
	{
		Name:  "Tablero",
		Color: RGB{255, 193, 7},
		Elements: []string{
			"Medidor gasolina/diesel", "Medidor presión aceite", "Medidor temperatura", "Medidor carga",
			"Tacómetro", "Velocímetro", "Odómetro",
			"Luz direccional izquierda", "Luz direccional derecha", "Luz intermitentes",
			"Luz testigo motor", "Luz altas", "Luz bajas", "Luz cinturón seguridad",
			"Botón luces interiores", "Botón luces cabina", "Botón limpiaparabrisas",
		},
	},
}

// CatalogSize is the number of (category, element) pairs in the catalog.
func CatalogSize() int {
	n := 0
	for _, c := range InspectionCatalog {
		n += len(c.Elements)
	}
	return n
}
