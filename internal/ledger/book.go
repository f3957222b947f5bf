// Package ledger keeps purchase and order totals and product stock in step
// with their line items. Every exported mutation runs in one transaction.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"inventory-backend/internal/apperr"
	"inventory-backend/internal/metrics"
	"inventory-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// book describes one kind of document. Purchases add stock, orders remove it.
type book struct {
	name       string
	direction  int
	docTable   string
	itemTable  string
	docFK      string
	priceCol   string // also the request field name of the price
	docEntity  string
	itemEntity string
	insert     func(tx *gorm.DB, l *line) error
}

var purchases = book{
	name:       "purchase",
	direction:  1,
	docTable:   "supplier_purchases",
	itemTable:  "supplier_purchase_items",
	docFK:      "purchase_id",
	priceCol:   "unit_cost",
	docEntity:  "purchase",
	itemEntity: "purchase item",
	insert: func(tx *gorm.DB, l *line) error {
		it := models.SupplierPurchaseItem{
			PurchaseID: l.DocID,
			ProductID:  l.ProductID,
			Quantity:   l.Quantity,
			UnitCost:   l.Price,
			Subtotal:   l.Subtotal,
		}
		if err := tx.Create(&it).Error; err != nil {
			return err
		}
		l.ID = it.ID
		return nil
	},
}

var orders = book{
	name:       "order",
	direction:  -1,
	docTable:   "customer_orders",
	itemTable:  "customer_order_items",
	docFK:      "order_id",
	priceCol:   "unit_price",
	docEntity:  "order",
	itemEntity: "order item",
	insert: func(tx *gorm.DB, l *line) error {
		it := models.CustomerOrderItem{
			OrderID:   l.DocID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.Price,
			Subtotal:  l.Subtotal,
		}
		if err := tx.Create(&it).Error; err != nil {
			return err
		}
		l.ID = it.ID
		return nil
	},
}

// line is an item row of either book.
type line struct {
	ID        uint
	DocID     uint
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
	Subtotal  decimal.Decimal
}

// newLine rounds the price first so the subtotal matches the stored price.
func newLine(docID uint, in ItemInput) line {
	price := UnitPrice(in.UnitPrice)
	return line{
		DocID:     docID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Price:     price,
		Subtotal:  Subtotal(in.Quantity, price),
	}
}

// run executes fn in a transaction (a savepoint when db already is one) and
// records the outcome.
func (b book) run(ctx context.Context, db *gorm.DB, op string, fn func(tx *gorm.DB) error) error {
	err := db.WithContext(ctx).Transaction(fn)
	return b.observe(op, apperr.FromDB(err, b.docEntity))
}

func (b book) observe(op string, err error) error {
	return metrics.ObserveLedger(b.name, op, err)
}

func (b book) lineColumns() string {
	return fmt.Sprintf("id, %s AS doc_id, product_id, quantity, %s AS price, subtotal", b.docFK, b.priceCol)
}

func (b book) lockDoc(tx *gorm.DB, docID uint) error {
	var row struct{ ID uint }
	err := tx.Table(b.docTable).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", docID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(b.docEntity, docID)
	}
	return err
}

// lockLine loads an item of docID for update. An item of another document
// is reported as missing.
func (b book) lockLine(tx *gorm.DB, docID, itemID uint) (line, error) {
	var l line
	err := tx.Table(b.itemTable).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select(b.lineColumns()).
		Where("id = ?", itemID).
		Take(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && l.DocID != docID) {
		return line{}, apperr.NotFound(b.itemEntity, itemID)
	}
	return l, err
}

func (b book) lines(tx *gorm.DB, docID uint) ([]line, error) {
	var ls []line
	err := tx.Table(b.itemTable).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select(b.lineColumns()).
		Where(b.docFK+" = ?", docID).
		Order("id").
		Find(&ls).Error
	return ls, err
}

func (b book) addToTotal(tx *gorm.DB, docID uint, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}
	return tx.Table(b.docTable).Where("id = ?", docID).Updates(map[string]any{
		"total_amount": gorm.Expr("total_amount + ?::numeric", delta),
		"updated_at":   time.Now(),
	}).Error
}

func (b book) setTotal(tx *gorm.DB, docID uint, total decimal.Decimal) error {
	return tx.Table(b.docTable).Where("id = ?", docID).Updates(map[string]any{
		"total_amount": total.Round(2),
		"updated_at":   time.Now(),
	}).Error
}

// stockMove is the signed stock effect of one line.
type stockMove struct {
	productID uint
	delta     int
}

// applyStock applies every move, one per line, in ascending product order so
// concurrent operations lock product rows in the same sequence.
func applyStock(tx *gorm.DB, moves []stockMove) error {
	sort.SliceStable(moves, func(i, j int) bool { return moves[i].productID < moves[j].productID })
	for _, m := range moves {
		if err := adjustStock(tx, m.productID, m.delta); err != nil {
			return err
		}
	}
	return nil
}

// adjustStock moves a product's stock by delta. The update is a single
// atomic increment guarded against going below zero.
func adjustStock(tx *gorm.DB, productID uint, delta int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock_quantity + ? >= 0", productID, delta).
		Updates(map[string]any{
			"stock_quantity": gorm.Expr("stock_quantity + ?", delta),
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := tx.Model(&models.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperr.NotFound("product", productID)
	}
	return apperr.Invalid("quantity", "insufficient stock for product %d", productID)
}

// createLines inserts items in the given order and returns their total.
func (b book) createLines(tx *gorm.DB, docID uint, items []ItemInput) (decimal.Decimal, error) {
	moves := make([]stockMove, 0, len(items))
	for _, in := range items {
		moves = append(moves, stockMove{productID: in.ProductID, delta: b.direction * in.Quantity})
	}
	if err := applyStock(tx, moves); err != nil {
		return decimal.Zero, err
	}

	subtotals := make([]decimal.Decimal, 0, len(items))
	for _, in := range items {
		l := newLine(docID, in)
		if err := b.insert(tx, &l); err != nil {
			return decimal.Zero, apperr.FromDB(err, b.itemEntity)
		}
		subtotals = append(subtotals, l.Subtotal)
	}
	return Sum(subtotals...), nil
}

func (b book) addLine(tx *gorm.DB, docID uint, in ItemInput) (line, error) {
	if err := b.lockDoc(tx, docID); err != nil {
		return line{}, err
	}
	l := newLine(docID, in)
	if err := adjustStock(tx, l.ProductID, b.direction*l.Quantity); err != nil {
		return line{}, err
	}
	if err := b.insert(tx, &l); err != nil {
		return line{}, apperr.FromDB(err, b.itemEntity)
	}
	if err := b.addToTotal(tx, docID, l.Subtotal); err != nil {
		return line{}, err
	}
	return l, nil
}

// updateLine applies only the net change of quantity and subtotal.
func (b book) updateLine(tx *gorm.DB, docID, itemID uint, in ItemChange) error {
	if err := b.lockDoc(tx, docID); err != nil {
		return err
	}
	old, err := b.lockLine(tx, docID, itemID)
	if err != nil {
		return err
	}

	price := UnitPrice(in.UnitPrice)
	newSubtotal := Subtotal(in.Quantity, price)
	if err := adjustStock(tx, old.ProductID, b.direction*(in.Quantity-old.Quantity)); err != nil {
		return err
	}
	if err := tx.Table(b.itemTable).Where("id = ?", old.ID).Updates(map[string]any{
		"quantity":   in.Quantity,
		b.priceCol:   price,
		"subtotal":   newSubtotal,
		"updated_at": time.Now(),
	}).Error; err != nil {
		return err
	}
	return b.addToTotal(tx, docID, newSubtotal.Sub(old.Subtotal))
}

func (b book) deleteLine(tx *gorm.DB, docID, itemID uint) error {
	if err := b.lockDoc(tx, docID); err != nil {
		return err
	}
	l, err := b.lockLine(tx, docID, itemID)
	if err != nil {
		return err
	}
	if err := adjustStock(tx, l.ProductID, -b.direction*l.Quantity); err != nil {
		return err
	}
	if err := b.addToTotal(tx, docID, l.Subtotal.Neg()); err != nil {
		return err
	}
	return tx.Exec("DELETE FROM "+b.itemTable+" WHERE id = ?", l.ID).Error
}

// deleteDoc reverses the stock effect of every line, then removes the lines
// and the document.
func (b book) deleteDoc(tx *gorm.DB, docID uint) error {
	if err := b.lockDoc(tx, docID); err != nil {
		return err
	}
	ls, err := b.lines(tx, docID)
	if err != nil {
		return err
	}

	moves := make([]stockMove, 0, len(ls))
	for _, l := range ls {
		moves = append(moves, stockMove{productID: l.ProductID, delta: -b.direction * l.Quantity})
	}
	if err := applyStock(tx, moves); err != nil {
		return err
	}

	if err := tx.Exec("DELETE FROM "+b.itemTable+" WHERE "+b.docFK+" = ?", docID).Error; err != nil {
		return err
	}
	return tx.Exec("DELETE FROM "+b.docTable+" WHERE id = ?", docID).Error
}

// detachProduct takes the subtotals of a product's lines out of their
// documents' totals, ahead of the lines being removed with the product.
func (b book) detachProduct(tx *gorm.DB, productID uint) error {
	return tx.Exec(fmt.Sprintf(`
		UPDATE %[1]s d
		SET total_amount = d.total_amount - s.amount, updated_at = now()
		FROM (
			SELECT %[2]s AS doc_id, SUM(subtotal) AS amount
			FROM %[3]s
			WHERE product_id = ?
			GROUP BY %[2]s
		) s
		WHERE d.id = s.doc_id
	`, b.docTable, b.docFK, b.itemTable), productID).Error
}

// lockRow locks a referenced row for the rest of the transaction.
func lockRow(tx *gorm.DB, model any, strength string, id uint, entity string) error {
	var row struct{ ID uint }
	err := tx.Model(model).
		Clauses(clause.Locking{Strength: strength}).
		Select("id").
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(entity, id)
	}
	return err
}
