package constants

const (
	// Monthly income/outgoing totals. Tithes, offerings and bookstore sales
	// count as income; expenses as outgoing. Month format: YYYY-MM.
	TreasuryMonthlyReport = `
	SELECT month, category, SUM(total) AS total FROM (
		SELECT substring(date from 1 for 7) AS month, 'dizimos'   AS category, amount AS total FROM tithes
		UNION ALL
		SELECT substring(date from 1 for 7) AS month, 'ofertas'   AS category, amount AS total FROM offerings
		UNION ALL
		SELECT substring(date from 1 for 7) AS month, 'livraria'  AS category, amount AS total FROM bookstore_sales
		UNION ALL
		SELECT substring(due_date from 1 for 7) AS month, 'despesas' AS category, amount AS total FROM expenses
	) entries
	WHERE month = $1
	GROUP BY month, category
	ORDER BY category
	`
)
