package i18n

var catalogs = map[Locale]map[string]string{
	English: english,
	Arabic:  arabic,
}

var english = map[string]string{
	"app_title":               "Fujiplus ERP",
	"main_menu":               "Main Menu",
	"main_operations":         "Main Operations",
	"manufacturing_logistics": "Manufacturing & Logistics",
	"system":                  "System",
	"dashboard":               "Dashboard",
	"inventory":               "Inventory",
	"products":                "Products",
	"sales":                   "Sales",
	"invoices":                "Invoices",
	"purchasing":              "Purchasing",
	"purchase_orders":         "Purchase Orders",
	"manufacturing":           "Manufacturing",
	"production_orders":       "Production Orders",
	"bill_of_materials":       "Bill of Materials",
	"branches_warehouses":     "Branches & Warehouses",
	"inventory_transfers":     "Inventory Transfers",
	"goods_receipt":           "Goods Receipt",
	"reports":                 "Reports",
	"all_reports":             "All Reports",
	"inventory_reports":       "Inventory Reports",
	"sales_reports":           "Sales Reports",
	"financials":              "Financials",
	"settings":                "Settings",
	"total_sales":             "Total Sales",
	"total_purchases":         "Total Purchases",
	"inventory_value":         "Inventory Value",
	"quick_ratio":             "Quick Ratio",
	"monthly_sales_trend":     "Monthly Sales Trend",
	"top_selling_products":    "Top Selling Products",
	"search":                  "Search",
	"search_products":         "Search products...",
	"search_invoices":         "Search invoices...",
	"product_name":            "Product Name",
	"sku":                     "SKU",
	"category":                "Category",
	"item_type":               "Item Type",
	"stock":                   "Stock",
	"price":                   "Price",
	"status":                  "Status",
	"customer":                "Customer",
	"date":                    "Date",
	"total_amount":            "Total Amount",
	"id":                      "ID",
	"supplier":                "Supplier",
	"product":                 "Product",
	"quantity":                "Quantity",
	"finished_good":           "Finished Good",
	"finished_goods":          "Finished Goods",
	"components":              "Components",
	"raw_materials":           "Raw Materials",
	"warehouse_name":          "Warehouse Name",
	"warehouse_type":          "Type",
	"branch":                  "Branch",
	"location":                "Location",
	"from_warehouse":          "From",
	"to_warehouse":            "To",
	"available":               "Available",
	"reserved":                "Reserved",
	"total_quantity":          "Total Quantity",
	"warehouse_quantity":      "Quantity in Warehouses",
	"page_not_found":          "Page Not Found",
	"go_home":                 "Press h to go home",
	"loading":                 "Loading...",
	"load_failed":             "Failed to load: %s",
	"retry_hint":              "Press r to retry",
	"no_results":              "No matching records",
	"theme":                   "Theme",
	"language":                "Language",
	"currency":                "Currency",
	"appearance":              "Appearance",
	"records":                 "%d records",
	"paid_invoices":           "Paid",
	"outstanding_invoices":    "Outstanding",
	"open_orders":             "Open Orders",
	"in_transit":              "In Transit",
	"low_stock":               "Low or out of stock",
	"net_position":            "Sales less purchases",
	"item_count":              "Items",
	"help_global":             "q quit  h home  tab next  x close  r reload  / search",
	"help_menu":               "j/k move  enter open",
	"help_settings":           "j/k move  enter change",
}

var arabic = map[string]string{
	"app_title":               "نظام فوجي بلس",
	"main_menu":               "القائمة الرئيسية",
	"main_operations":         "العمليات الرئيسية",
	"manufacturing_logistics": "التصنيع والخدمات اللوجستية",
	"system":                  "النظام",
	"dashboard":               "لوحة التحكم",
	"inventory":               "المخزون",
	"products":                "المنتجات",
	"sales":                   "المبيعات",
	"invoices":                "الفواتير",
	"purchasing":              "المشتريات",
	"purchase_orders":         "أوامر الشراء",
	"manufacturing":           "التصنيع",
	"production_orders":       "أوامر الإنتاج",
	"bill_of_materials":       "قائمة المواد",
	"branches_warehouses":     "الفروع والمستودعات",
	"inventory_transfers":     "تحويلات المخزون",
	"goods_receipt":           "استلام البضائع",
	"reports":                 "التقارير",
	"all_reports":             "جميع التقارير",
	"inventory_reports":       "تقارير المخزون",
	"sales_reports":           "تقارير المبيعات",
	"financials":              "المالية",
	"settings":                "الإعدادات",
	"total_sales":             "إجمالي المبيعات",
	"total_purchases":         "إجمالي المشتريات",
	"inventory_value":         "قيمة المخزون",
	"quick_ratio":             "النسبة السريعة",
	"monthly_sales_trend":     "اتجاه المبيعات الشهري",
	"top_selling_products":    "المنتجات الأكثر مبيعًا",
	"search":                  "بحث",
	"search_products":         "ابحث عن المنتجات...",
	"search_invoices":         "ابحث عن الفواتير...",
	"product_name":            "اسم المنتج",
	"sku":                     "SKU",
	"category":                "الفئة",
	"item_type":               "نوع الصنف",
	"stock":                   "المخزون",
	"price":                   "السعر",
	"status":                  "الحالة",
	"customer":                "العميل",
	"date":                    "التاريخ",
	"total_amount":            "المبلغ الإجمالي",
	"id":                      "الرقم",
	"supplier":                "المورد",
	"product":                 "المنتج",
	"quantity":                "الكمية",
	"finished_good":           "المنتج النهائي",
	"finished_goods":          "المنتجات النهائية",
	"components":              "المكونات",
	"raw_materials":           "المواد الخام",
	"warehouse_name":          "اسم المستودع",
	"warehouse_type":          "النوع",
	"branch":                  "الفرع",
	"location":                "الموقع",
	"from_warehouse":          "من",
	"to_warehouse":            "إلى",
	"available":               "المتاح",
	"reserved":                "المحجوز",
	"total_quantity":          "إجمالي الكمية",
	"warehouse_quantity":      "الكمية في المستودعات",
	"page_not_found":          "الصفحة غير موجودة",
	"go_home":                 "اضغط h للعودة للرئيسية",
	"loading":                 "جار التحميل...",
	"load_failed":             "فشل التحميل: %s",
	"retry_hint":              "اضغط r لإعادة المحاولة",
	"no_results":              "لا توجد سجلات مطابقة",
	"theme":                   "السمة",
	"language":                "اللغة",
	"currency":                "العملة",
	"appearance":              "المظهر",
	"records":                 "%d سجل",
	"paid_invoices":           "مدفوعة",
	"outstanding_invoices":    "مستحقة",
	"open_orders":             "أوامر مفتوحة",
	"in_transit":              "قيد النقل",
	"low_stock":               "منخفض أو نافد",
	"net_position":            "صافي المبيعات بعد المشتريات",
	"item_count":              "الأصناف",
}
