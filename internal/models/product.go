package models

// Product represents a row of the produto table.
type Product struct {
	ID         uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Descricao  string  `json:"descricao" gorm:"not null"`
	Quantidade float64 `json:"quantidade" gorm:"not null"`
	Valor      float64 `json:"valor" gorm:"not null"`
}

// TableName pins the table name; GORM would pluralize it otherwise.
func (Product) TableName() string {
	return "produto"
}

// ProductFields holds the three writable columns of a product.
type ProductFields struct {
	Descricao  string  `json:"descricao"`
	Quantidade float64 `json:"quantidade"`
	Valor      float64 `json:"valor"`
}

// Columns returns the fields keyed by column name, ready for an update.
func (f ProductFields) Columns() map[string]interface{} {
	return map[string]interface{}{
		"descricao":  f.Descricao,
		"quantidade": f.Quantidade,
		"valor":      f.Valor,
	}
}
