package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"edumart/internal/cart"
	"edumart/internal/category"
	"edumart/internal/i18n"
	"edumart/internal/order"
	"edumart/internal/product"
	"edumart/internal/utils"
)

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderProducts(w io.Writer, list []product.Product) {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", p.ID, utils.Truncate(p.Name, 32), p.CategoryName, utils.FormatMoney(p.Price), p.StockQuantity)
	}
	tw.Flush()
}

func renderBreadcrumbs(w io.Writer, path []category.Category) {
	if len(path) == 0 {
		return
	}
	names := make([]string, len(path))
	for i, c := range path {
		names[i] = c.Name
	}
	fmt.Fprintln(w, strings.Join(names, " > "))
}

func renderCart(w io.Writer, l *i18n.Localizer, c *cart.Cart) {
	if c == nil || len(c.Items) == 0 {
		fmt.Fprintln(w, l.T(i18n.CartEmpty))
		return
	}
	fmt.Fprintln(w, l.T(i18n.CartTitle))
	tw := table(w)
	fmt.Fprintf(tw, "ITEM\tPRODUCT\t%s\t%s\t%s\n", l.T(i18n.CommonPrice), l.T(i18n.CommonQuantity), l.T(i18n.CommonTotal))
	for _, it := range c.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", it.ID, utils.Truncate(it.ProductName, 32), utils.FormatMoney(it.Price), it.Quantity, utils.FormatMoney(it.Total))
	}
	tw.Flush()
	fmt.Fprintf(w, "%s: %s  tax: %s  %s: %s  (%d %s)\n",
		l.T(i18n.CommonSubtotal), utils.FormatMoney(c.Subtotal),
		utils.FormatMoney(c.Tax),
		l.T(i18n.CommonTotal), utils.FormatMoney(c.Total),
		c.ItemCount, l.T(i18n.CartItems))
}

func renderOrders(w io.Writer, l *i18n.Localizer, list []order.Order) {
	fmt.Fprintln(w, l.T(i18n.OrdersTitle))
	tw := table(w)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		strings.ToUpper(l.T(i18n.OrdersOrderNumber)), strings.ToUpper(l.T(i18n.OrdersDate)),
		strings.ToUpper(l.T(i18n.OrdersStatus)), strings.ToUpper(l.T(i18n.OrdersItems)),
		strings.ToUpper(l.T(i18n.CommonTotal)))
	for _, o := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", o.OrderNumber, o.CreatedAt.Format("2006-01-02"), o.Status, len(o.OrderItems), utils.FormatMoney(o.Total))
	}
	tw.Flush()
}

func renderOrder(w io.Writer, l *i18n.Localizer, o *order.Order) {
	fmt.Fprintf(w, "%s %s (%s) %s, payment %s via %s\n",
		l.T(i18n.OrdersOrderNumber), o.OrderNumber, o.ID, o.Status, o.PaymentStatus, o.PaymentMethod)
	for _, it := range o.OrderItems {
		fmt.Fprintf(w, "  %d x %s  %s\n", it.Quantity, it.ProductName, utils.FormatMoney(it.Total))
	}
	fmt.Fprintf(w, "%s: %s\n", l.T(i18n.CommonTotal), utils.FormatMoney(o.Total))
	if lines := o.ShippingAddress.Lines(); len(lines) > 0 {
		fmt.Fprintf(w, "ship to: %s\n", strings.Join(lines, ", "))
	}
}
