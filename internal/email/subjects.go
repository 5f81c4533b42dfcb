package email

const subjectCheckoutReceived = "We received your order request"
